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

// UserBookRepository defines the interface for personal library operations
type UserBookRepository interface {
	Create(ctx context.Context, userID, title, author string, status entities.BookStatus) (*entities.UserBook, error)
	FindByID(ctx context.Context, id string) (*entities.UserBook, error)
	ListByUser(ctx context.Context, userID string) ([]*entities.UserBook, error)
	Update(ctx context.Context, book *entities.UserBook) error
	Delete(ctx context.Context, id string) error
}

type userBookRepository struct {
	db *sql.DB
}

// NewUserBookRepository creates a new personal library repository
func NewUserBookRepository(db *sql.DB) UserBookRepository {
	return &userBookRepository{db: db}
}

const userBookColumns = `id, user_id, title, author, status, is_public, created_at, updated_at`

func scanUserBook(row rowScanner) (*entities.UserBook, error) {
	var book entities.UserBook
	var status string
	err := row.Scan(
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
		return nil, err
	}
	book.Status = entities.BookStatus(status)
	return &book, nil
}

// Create inserts a new private entry owned by userID
func (r *userBookRepository) Create(ctx context.Context, userID, title, author string, status entities.BookStatus) (*entities.UserBook, error) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	book := &entities.UserBook{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Author:    author,
		Status:    status,
		IsPublic:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	query := `
		INSERT INTO user_books (id, user_id, title, author, status, is_public, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		book.ID, book.UserID, book.Title, book.Author, string(book.Status), book.IsPublic, book.CreatedAt, book.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create user book: %w", err)
	}

	return book, nil
}

// FindByID finds a personal entry by ID regardless of owner
func (r *userBookRepository) FindByID(ctx context.Context, id string) (*entities.UserBook, error) {
	query := `SELECT ` + userBookColumns + ` FROM user_books WHERE id = $1`

	book, err := scanUserBook(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user book: %w", err)
	}

	return book, nil
}

// ListByUser returns the entries owned by userID, newest first
func (r *userBookRepository) ListByUser(ctx context.Context, userID string) ([]*entities.UserBook, error) {
	query := `SELECT ` + userBookColumns + ` FROM user_books WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user books: %w", err)
	}
	defer rows.Close()

	books := make([]*entities.UserBook, 0)
	for rows.Next() {
		book, err := scanUserBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user book: %w", err)
		}
		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user books: %w", err)
	}

	return books, nil
}

// Update persists title, author and status and bumps updated_at
func (r *userBookRepository) Update(ctx context.Context, book *entities.UserBook) error {
	book.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)

	query := `
		UPDATE user_books
		SET title = $1, author = $2, status = $3, updated_at = $4
		WHERE id = $5
	`
	result, err := r.db.ExecContext(ctx, query, book.Title, book.Author, string(book.Status), book.UpdatedAt, book.ID)
	if err != nil {
		return fmt.Errorf("failed to update user book: %w", err)
	}

	return requireAffected(result)
}

// Delete removes a personal entry
func (r *userBookRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM user_books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user book: %w", err)
	}

	return requireAffected(result)
}
