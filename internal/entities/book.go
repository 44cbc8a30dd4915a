package entities

import "time"

// BookStatus is the reading state of a book
type BookStatus string

const (
	StatusReading   BookStatus = "Reading"
	StatusCompleted BookStatus = "Completed"
	StatusWishlist  BookStatus = "Wishlist"
)

// Valid reports whether s is one of the known statuses
func (s BookStatus) Valid() bool {
	switch s {
	case StatusReading, StatusCompleted, StatusWishlist:
		return true
	}
	return false
}

// Book is an entry of the shared public catalog
type Book struct {
	ID        string     `json:"id"`
	UserID    *string    `json:"user,omitempty"` // Required only when IsPublic is false
	Title     string     `json:"title"`
	Author    string     `json:"author"`
	Status    BookStatus `json:"status"`
	IsPublic  bool       `json:"isPublic"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// UserBook is an entry of a user's private library. IsPublic is always false.
type UserBook struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user"`
	Title     string     `json:"title"`
	Author    string     `json:"author"`
	Status    BookStatus `json:"status"`
	IsPublic  bool       `json:"isPublic"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// OwnedBy reports whether the entry belongs to userID
func (b *UserBook) OwnedBy(userID string) bool {
	return b.UserID == userID
}
