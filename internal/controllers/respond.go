package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"booktracker-be/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// respondBindError reports a malformed or invalid request body
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, describeFieldError(fe))
	}
	c.JSON(http.StatusBadRequest, gin.H{
		"message": "Invalid request body",
		"errors":  details,
	})
}

func describeFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return field + " is invalid"
	}
}

// requireIdentity returns the caller resolved by the auth gate or writes 401
func requireIdentity(c *gin.Context) (middleware.Identity, bool) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "Not authorized, no token provided")
	}
	return identity, ok
}
