package models

// CreateBookRequest represents the request body for adding a book to the personal library
type CreateBookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Status string `json:"status,omitempty"` // Defaults to Reading
}

// UpdateBookRequest represents a partial book update. Empty fields keep their previous value.
type UpdateBookRequest struct {
	Title  string `json:"title,omitempty"`
	Author string `json:"author,omitempty"`
	Status string `json:"status,omitempty"`
}
