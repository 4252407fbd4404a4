package models

// RegisterRequest represents the request body for user registration
type RegisterRequest struct {
	Username  string  `json:"username" binding:"required,min=3,max=150"`
	Password  string  `json:"password" binding:"required,min=6"`
	Email     *string `json:"email,omitempty" binding:"omitempty,email"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

// LoginRequest represents the request body for user login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
