package repository

import (
	"database/sql"
	"fmt"

	"catalog-be/internal/apperrors"
	"catalog-be/internal/entities"
)

// TokenRepository defines the interface for auth token database operations
type TokenRepository interface {
	// GetOrCreate returns the user's live token, inserting candidateKey
	// only if the user has none yet. At most one token per user.
	GetOrCreate(userID, candidateKey string) (*entities.Token, error)
	FindUserByKey(key string) (*entities.User, error)
	// FindKeyByUserID returns the user's token key, or "" if the user
	// has never logged in.
	FindKeyByUserID(userID string) (string, error)
}

type tokenRepository struct {
	db *sql.DB
}

// NewTokenRepository creates a new token repository
func NewTokenRepository(db *sql.DB) TokenRepository {
	return &tokenRepository{db: db}
}

// GetOrCreate inserts candidateKey for the user unless a token already
// exists; the following select returns the winner either way, so two
// concurrent logins still end up with the same key.
func (r *tokenRepository) GetOrCreate(userID, candidateKey string) (*entities.Token, error) {
	_, err := r.db.Exec(`
		INSERT INTO auth_tokens (key, user_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING
	`, candidateKey, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to create token: %w", err)
	}

	var token entities.Token
	err = r.db.QueryRow(`
		SELECT key, user_id, created_at FROM auth_tokens WHERE user_id = $1
	`, userID).Scan(&token.Key, &token.UserID, &token.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch token: %w", err)
	}

	return &token, nil
}

// FindKeyByUserID returns the token key issued to the user, if any
func (r *tokenRepository) FindKeyByUserID(userID string) (string, error) {
	var key string
	err := r.db.QueryRow(`SELECT key FROM auth_tokens WHERE user_id = $1`, userID).Scan(&key)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up token key: %w", err)
	}
	return key, nil
}

// FindUserByKey resolves a raw token key to its user
func (r *tokenRepository) FindUserByKey(key string) (*entities.User, error) {
	query := `
		SELECT u.id, u.username, u.password_hash, u.email, u.first_name, u.last_name, u.created_at, u.updated_at
		FROM auth_tokens t
		JOIN users u ON u.id = t.user_id
		WHERE t.key = $1
	`

	var user entities.User
	err := r.db.QueryRow(query, key).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.Authentication("invalid token")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up token: %w", err)
	}

	return &user, nil
}
