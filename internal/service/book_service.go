package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"booktracker-be/internal/cache"
	"booktracker-be/internal/entities"
	"booktracker-be/internal/models"
	"booktracker-be/internal/repository"
)

// PublicBooksCacheKey holds the JSON-encoded public catalog
const PublicBooksCacheKey = "books:public"

// BookService defines the interface for catalog and personal library logic
type BookService interface {
	ListPublic(ctx context.Context) ([]*entities.Book, error)
	AddPublic(ctx context.Context, req *models.CreateBookRequest) (*entities.Book, error)
	InvalidatePublicCache(ctx context.Context) error
	ListMine(ctx context.Context, userID string) ([]*entities.UserBook, error)
	Add(ctx context.Context, userID string, req *models.CreateBookRequest) (*entities.UserBook, error)
	GetOwned(ctx context.Context, userID, bookID string) (*entities.UserBook, error)
	Update(ctx context.Context, userID, bookID string, req *models.UpdateBookRequest) (*entities.UserBook, error)
	Remove(ctx context.Context, userID, bookID string) error
}

type bookService struct {
	books     repository.BookRepository
	userBooks repository.UserBookRepository
	cache     cache.Cache
	cacheTTL  time.Duration
	log       logrus.FieldLogger
}

// NewBookService creates a new book service. cacheClient may be nil.
func NewBookService(
	books repository.BookRepository,
	userBooks repository.UserBookRepository,
	cacheClient cache.Cache,
	cacheTTL time.Duration,
	log logrus.FieldLogger,
) BookService {
	svc := &bookService{
		books:     books,
		userBooks: userBooks,
		cacheTTL:  cacheTTL,
		log:       log,
	}
	// Only set cache if provided (allows graceful degradation)
	if cacheClient != nil {
		svc.cache = cacheClient
	}
	return svc
}

// ListPublic returns the shared catalog, served from cache when possible
func (s *bookService) ListPublic(ctx context.Context) ([]*entities.Book, error) {
	if s.cache != nil {
		var cached []*entities.Book
		err := s.cache.GetJSON(ctx, PublicBooksCacheKey, &cached)
		if err == nil && cached != nil {
			return cached, nil
		}
		if err != nil && !errors.Is(err, cache.ErrCacheMiss) {
			s.log.WithError(err).Warn("Public catalog cache read failed")
		}
	}

	books, err := s.books.ListPublic(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, PublicBooksCacheKey, books, s.cacheTTL); err != nil {
			s.log.WithError(err).Warn("Public catalog cache write failed")
		}
	}

	return books, nil
}

// AddPublic inserts a shared catalog entry and drops the cached listing
func (s *bookService) AddPublic(ctx context.Context, req *models.CreateBookRequest) (*entities.Book, error) {
	status, err := models.ValidateCreateBook(req)
	if err != nil {
		return nil, err
	}

	book := &entities.Book{
		Title:    req.Title,
		Author:   req.Author,
		Status:   status,
		IsPublic: true,
	}
	if err := s.books.Create(ctx, book); err != nil {
		return nil, err
	}

	if err := s.InvalidatePublicCache(ctx); err != nil {
		s.log.WithError(err).Warn("Public catalog cache invalidation failed")
	}
	return book, nil
}

// InvalidatePublicCache removes the cached catalog listing, if any
func (s *bookService) InvalidatePublicCache(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, PublicBooksCacheKey)
}

// ListMine returns the private entries owned by userID
func (s *bookService) ListMine(ctx context.Context, userID string) ([]*entities.UserBook, error) {
	return s.userBooks.ListByUser(ctx, userID)
}

// Add creates a private entry owned by userID
func (s *bookService) Add(ctx context.Context, userID string, req *models.CreateBookRequest) (*entities.UserBook, error) {
	status, err := models.ValidateCreateBook(req)
	if err != nil {
		return nil, err
	}
	return s.userBooks.Create(ctx, userID, req.Title, req.Author, status)
}

// GetOwned loads an entry, checking id format, existence and ownership in that order
func (s *bookService) GetOwned(ctx context.Context, userID, bookID string) (*entities.UserBook, error) {
	if _, err := uuid.Parse(bookID); err != nil {
		return nil, ErrInvalidBookID
	}

	book, err := s.userBooks.FindByID(ctx, bookID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find book: %w", err)
	}

	if !book.OwnedBy(userID) {
		return nil, ErrForbidden
	}
	return book, nil
}

// Update applies the non-empty fields of req to an owned entry
func (s *bookService) Update(ctx context.Context, userID, bookID string, req *models.UpdateBookRequest) (*entities.UserBook, error) {
	if _, err := uuid.Parse(bookID); err != nil {
		return nil, ErrInvalidBookID
	}
	if err := models.ValidateUpdateBook(req); err != nil {
		return nil, err
	}

	book, err := s.GetOwned(ctx, userID, bookID)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		book.Title = req.Title
	}
	if req.Author != "" {
		book.Author = req.Author
	}
	if req.Status != "" {
		book.Status = entities.BookStatus(req.Status)
	}

	err = s.userBooks.Update(ctx, book)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrBookNotFound
	}
	if err != nil {
		return nil, err
	}
	return book, nil
}

// Remove deletes an owned entry
func (s *bookService) Remove(ctx context.Context, userID, bookID string) error {
	if _, err := s.GetOwned(ctx, userID, bookID); err != nil {
		return err
	}

	err := s.userBooks.Delete(ctx, bookID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrBookNotFound
	}
	return err
}
