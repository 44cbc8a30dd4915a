package controllers

import (
	"errors"
	"io"
	"net/http"

	"booktracker-be/internal/models"
	"booktracker-be/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type BookController struct {
	bookService service.BookService
	log         logrus.FieldLogger
}

func NewBookController(bookService service.BookService, log logrus.FieldLogger) *BookController {
	return &BookController{
		bookService: bookService,
		log:         log,
	}
}

// GetPublicBooks handles GET /api/books/public
func (bc *BookController) GetPublicBooks(c *gin.Context) {
	books, err := bc.bookService.ListPublic(c.Request.Context())
	if err != nil {
		bc.log.WithError(err).Error("Listing public books failed")
		respondMessage(c, http.StatusInternalServerError, "Error fetching public books")
		return
	}

	c.JSON(http.StatusOK, books)
}

// GetMyBooks handles GET /api/books/my
func (bc *BookController) GetMyBooks(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	books, err := bc.bookService.ListMine(c.Request.Context(), identity.ID)
	if err != nil {
		bc.log.WithError(err).WithField("user_id", identity.ID).Error("Listing user books failed")
		respondMessage(c, http.StatusInternalServerError, "Error fetching user books")
		return
	}

	c.JSON(http.StatusOK, books)
}

// AddBook handles POST /api/books
func (bc *BookController) AddBook(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req models.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondBindError(c, err)
		return
	}

	book, err := bc.bookService.Add(c.Request.Context(), identity.ID, &req)
	if err != nil {
		respondBookError(c, bc.log, err, "add")
		return
	}

	c.JSON(http.StatusCreated, models.BookResponse{
		Message: "Book added successfully",
		Book:    book,
	})
}

// UpdateBook handles PATCH /api/books/:id
func (bc *BookController) UpdateBook(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req models.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondBindError(c, err)
		return
	}

	book, err := bc.bookService.Update(c.Request.Context(), identity.ID, c.Param("id"), &req)
	if err != nil {
		respondBookError(c, bc.log, err, "update")
		return
	}

	c.JSON(http.StatusOK, models.BookResponse{
		Message: "Book updated successfully",
		Book:    book,
	})
}

// DeleteBook handles DELETE /api/books/:id
func (bc *BookController) DeleteBook(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	if err := bc.bookService.Remove(c.Request.Context(), identity.ID, c.Param("id")); err != nil {
		respondBookError(c, bc.log, err, "delete")
		return
	}

	respondMessage(c, http.StatusOK, "Book deleted successfully")
}

// respondBookError maps service errors for the given action ("add", "update", ...)
func respondBookError(c *gin.Context, log logrus.FieldLogger, err error, action string) {
	switch {
	case errors.Is(err, models.ErrTitleAuthorRequired):
		respondMessage(c, http.StatusBadRequest, "Please provide title and author")
	case errors.Is(err, models.ErrInvalidStatus):
		respondMessage(c, http.StatusBadRequest, "Invalid status")
	case errors.Is(err, service.ErrInvalidBookID):
		respondMessage(c, http.StatusBadRequest, "Invalid book ID")
	case errors.Is(err, service.ErrBookNotFound):
		respondMessage(c, http.StatusNotFound, "Book not found")
	case errors.Is(err, service.ErrForbidden):
		respondMessage(c, http.StatusForbidden, "You are not allowed to "+action+" this book")
	default:
		log.WithError(err).WithField("action", action).Error("Book operation failed")
		respondMessage(c, http.StatusInternalServerError, "Failed to "+action+" book")
	}
}
