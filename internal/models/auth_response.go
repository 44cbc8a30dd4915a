package models

// UserResponse is the public view of a user returned by register and profile update
type UserResponse struct {
	ID       string `json:"id"` // UUID
	Username string `json:"username"`
	Email    string `json:"email"`
}

// LoginResponse represents the response after successful login
type LoginResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
	Token   string `json:"token"` // JWT token, also set as the jwt cookie
}
