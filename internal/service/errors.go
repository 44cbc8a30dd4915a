package service

import "errors"

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidBookID      = errors.New("invalid book id")
	ErrBookNotFound       = errors.New("book not found")
	ErrForbidden          = errors.New("book belongs to another user")
	ErrPasswordTooLong    = errors.New("password exceeds 72 bytes")
)
