package models

// UpdateUserRequest represents a partial update to a user. Absent fields
// are left unchanged; a supplied password is re-hashed.
type UpdateUserRequest struct {
	Username  *string `json:"username,omitempty" binding:"omitempty,min=3,max=150"`
	Password  *string `json:"password,omitempty" binding:"omitempty,min=6"`
	Email     *string `json:"email,omitempty" binding:"omitempty,email"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}
