package models

import (
	"testing"

	"booktracker-be/internal/entities"

	"github.com/stretchr/testify/assert"
)

func TestValidateCreateBook(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateBookRequest
		want    entities.BookStatus
		wantErr error
	}{
		{"defaults status", CreateBookRequest{Title: "Dune", Author: "Herbert"}, entities.StatusReading, nil},
		{"keeps valid status", CreateBookRequest{Title: "Dune", Author: "Herbert", Status: "Wishlist"}, entities.StatusWishlist, nil},
		{"missing title", CreateBookRequest{Author: "Herbert"}, "", ErrTitleAuthorRequired},
		{"blank author", CreateBookRequest{Title: "Dune", Author: "   "}, "", ErrTitleAuthorRequired},
		{"unknown status", CreateBookRequest{Title: "Dune", Author: "Herbert", Status: "Abandoned"}, "", ErrInvalidStatus},
		{"status is case sensitive", CreateBookRequest{Title: "Dune", Author: "Herbert", Status: "reading"}, "", ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			got, err := ValidateCreateBook(&req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateCreateBook_TrimsInput(t *testing.T) {
	req := CreateBookRequest{Title: "  Dune ", Author: " Herbert"}
	_, err := ValidateCreateBook(&req)
	assert.NoError(t, err)
	assert.Equal(t, "Dune", req.Title)
	assert.Equal(t, "Herbert", req.Author)
}

func TestValidateUpdateBook(t *testing.T) {
	assert.NoError(t, ValidateUpdateBook(&UpdateBookRequest{}))
	assert.NoError(t, ValidateUpdateBook(&UpdateBookRequest{Status: "Completed"}))
	assert.ErrorIs(t, ValidateUpdateBook(&UpdateBookRequest{Status: "Done"}), ErrInvalidStatus)
}
