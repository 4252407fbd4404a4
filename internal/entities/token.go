package entities

import "time"

// Token is an opaque bearer credential bound to exactly one user.
// A user holds at most one live token; repeated logins return the same key.
type Token struct {
	Key       string    `json:"key"`
	UserID    string    `json:"user_id"` // UUID
	CreatedAt time.Time `json:"created_at"`
}
