package models

import "booktracker-be/internal/entities"

// BookResponse wraps a personal library entry after add or update
type BookResponse struct {
	Message string             `json:"message"`
	Book    *entities.UserBook `json:"book"`
}
