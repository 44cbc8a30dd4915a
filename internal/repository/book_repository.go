package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"booktracker-be/internal/entities"

	"github.com/google/uuid"
)

var ErrPrivateBookWithoutOwner = errors.New("private catalog entry requires an owner")

// BookRepository defines the interface for shared catalog operations
type BookRepository interface {
	Create(ctx context.Context, book *entities.Book) error
	ListPublic(ctx context.Context) ([]*entities.Book, error)
}

type bookRepository struct {
	db *sql.DB
}

// NewBookRepository creates a new catalog repository
func NewBookRepository(db *sql.DB) BookRepository {
	return &bookRepository{db: db}
}

const bookColumns = `id, user_id, title, author, status, is_public, created_at, updated_at`

// Create inserts a catalog entry, filling in ID, status and timestamps when unset
func (r *bookRepository) Create(ctx context.Context, book *entities.Book) error {
	if !book.IsPublic && book.UserID == nil {
		return ErrPrivateBookWithoutOwner
	}
	if book.ID == "" {
		book.ID = uuid.NewString()
	}
	if book.Status == "" {
		book.Status = entities.StatusReading
	}
	now := time.Now().UTC().Truncate(time.Microsecond)
	book.CreatedAt = now
	book.UpdatedAt = now

	query := `
		INSERT INTO books (id, user_id, title, author, status, is_public, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		book.ID, book.UserID, book.Title, book.Author, string(book.Status), book.IsPublic, book.CreatedAt, book.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create book: %w", err)
	}

	return nil
}

// ListPublic returns every public catalog entry, newest first
func (r *bookRepository) ListPublic(ctx context.Context) ([]*entities.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE is_public = TRUE ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list public books: %w", err)
	}
	defer rows.Close()

	books := make([]*entities.Book, 0)
	for rows.Next() {
		var book entities.Book
		var status string
		err := rows.Scan(
			&book.ID,
			&book.UserID,
			&book.Title,
			&book.Author,
			&status,
			&book.IsPublic,
			&book.CreatedAt,
			&book.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		book.Status = entities.BookStatus(status)
		books = append(books, &book)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return books, nil
}
