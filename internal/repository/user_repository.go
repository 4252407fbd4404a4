package repository

import (
	"database/sql"
	"fmt"

	"catalog-be/internal/apperrors"
	"catalog-be/internal/entities"
)

// UserRepository defines the interface for user database operations
type UserRepository interface {
	Create(username, passwordHash string, email, firstName, lastName *string) (*entities.User, error)
	FindByUsername(username string) (*entities.User, error)
	FindByID(id string) (*entities.User, error)
	List() ([]*entities.User, error)
	Update(user *entities.User) error
	Delete(id string) error
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, username, password_hash, email, first_name, last_name, created_at, updated_at`

func scanUser(row *sql.Row) (*entities.User, error) {
	var user entities.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user into the database
func (r *userRepository) Create(username, passwordHash string, email, firstName, lastName *string) (*entities.User, error) {
	query := `
		INSERT INTO users (username, password_hash, email, first_name, last_name)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRow(query, username, passwordHash, email, firstName, lastName))
	if isUniqueViolation(err) {
		return nil, apperrors.ValidationField("username", "a user with this username already exists")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// FindByUsername finds a user by username
func (r *userRepository) FindByUsername(username string) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	user, err := scanUser(r.db.QueryRow(query, username))
	if err == sql.ErrNoRows {
		return nil, apperrors.NotFound("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// FindByID finds a user by ID (UUID)
func (r *userRepository) FindByID(id string) (*entities.User, error) {
	// id::text comparison keeps malformed UUIDs from erroring the query
	query := `SELECT ` + userColumns + ` FROM users WHERE id::text = $1`

	user, err := scanUser(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, apperrors.NotFound("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// List returns all users ordered by creation time
func (r *userRepository) List() ([]*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*entities.User
	for rows.Next() {
		var user entities.User
		err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.PasswordHash,
			&user.Email,
			&user.FirstName,
			&user.LastName,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

// Update persists mutable user fields
func (r *userRepository) Update(user *entities.User) error {
	query := `
		UPDATE users
		SET username = $1, password_hash = $2, email = $3, first_name = $4, last_name = $5, updated_at = NOW()
		WHERE id = $6
	`

	result, err := r.db.Exec(query, user.Username, user.PasswordHash, user.Email, user.FirstName, user.LastName, user.ID)
	if isUniqueViolation(err) {
		return apperrors.ValidationField("username", "a user with this username already exists")
	}
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFound("user not found")
	}

	return nil
}

// Delete removes a user. Owned products go with it (FK cascade).
func (r *userRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM users WHERE id::text = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFound("user not found")
	}

	return nil
}
