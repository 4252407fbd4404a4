package models

import "catalog-be/internal/entities"

// RegisterResponse is returned after successful registration. The raw token
// key is included exactly once, alongside the created user.
type RegisterResponse struct {
	User  *entities.User `json:"user"`
	Token string         `json:"token"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	Token string `json:"token"`
}
