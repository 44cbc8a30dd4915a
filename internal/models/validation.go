package models

import (
	"errors"
	"strings"

	"booktracker-be/internal/entities"
)

var (
	ErrTitleAuthorRequired = errors.New("title and author are required")
	ErrInvalidStatus       = errors.New("invalid status")
)

// ValidateCreateBook trims the request in place and resolves its status.
// A missing status defaults to Reading; an unknown one is rejected.
func ValidateCreateBook(req *CreateBookRequest) (entities.BookStatus, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Author = strings.TrimSpace(req.Author)
	req.Status = strings.TrimSpace(req.Status)

	if req.Title == "" || req.Author == "" {
		return "", ErrTitleAuthorRequired
	}
	if req.Status == "" {
		return entities.StatusReading, nil
	}
	status := entities.BookStatus(req.Status)
	if !status.Valid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// ValidateUpdateBook trims the request in place and checks a provided status
func ValidateUpdateBook(req *UpdateBookRequest) error {
	req.Title = strings.TrimSpace(req.Title)
	req.Author = strings.TrimSpace(req.Author)
	req.Status = strings.TrimSpace(req.Status)

	if req.Status != "" && !entities.BookStatus(req.Status).Valid() {
		return ErrInvalidStatus
	}
	return nil
}
