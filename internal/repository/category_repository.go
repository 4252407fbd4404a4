package repository

import (
	"database/sql"
	"fmt"

	"catalog-be/internal/apperrors"
	"catalog-be/internal/entities"
)

// CategoryRepository defines the interface for category database operations
type CategoryRepository interface {
	List() ([]*entities.Category, error)
	FindByID(id string) (*entities.Category, error)
	Create(name, slug string) (*entities.Category, error)
	Update(category *entities.Category) error
	Delete(id string) error
}

type categoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *sql.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// List returns all categories ordered by name ascending
func (r *categoryRepository) List() ([]*entities.Category, error) {
	rows, err := r.db.Query(`SELECT id, name, slug FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []*entities.Category
	for rows.Next() {
		var category entities.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Slug); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, &category)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// FindByID finds a category by ID (UUID)
func (r *categoryRepository) FindByID(id string) (*entities.Category, error) {
	// id::text comparison keeps malformed UUIDs from erroring the query
	query := `SELECT id, name, slug FROM categories WHERE id::text = $1`

	var category entities.Category
	err := r.db.QueryRow(query, id).Scan(&category.ID, &category.Name, &category.Slug)
	if err == sql.ErrNoRows {
		return nil, apperrors.NotFound("category not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	return &category, nil
}

// Create inserts a new category
func (r *categoryRepository) Create(name, slug string) (*entities.Category, error) {
	query := `
		INSERT INTO categories (name, slug)
		VALUES ($1, $2)
		RETURNING id, name, slug
	`

	var category entities.Category
	err := r.db.QueryRow(query, name, slug).Scan(&category.ID, &category.Name, &category.Slug)
	if isUniqueViolation(err) {
		return nil, apperrors.Conflict("a category with this slug already exists").WithField("slug", "already taken")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &category, nil
}

// Update persists category name and slug
func (r *categoryRepository) Update(category *entities.Category) error {
	result, err := r.db.Exec(`UPDATE categories SET name = $1, slug = $2 WHERE id = $3`,
		category.Name, category.Slug, category.ID)
	if isUniqueViolation(err) {
		return apperrors.Conflict("a category with this slug already exists").WithField("slug", "already taken")
	}
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFound("category not found")
	}

	return nil
}

// Delete removes a category. Blocked while products still reference it.
func (r *categoryRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM categories WHERE id::text = $1`, id)
	if isForeignKeyViolation(err) {
		return apperrors.Conflict("category is still referenced by products and cannot be deleted")
	}
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFound("category not found")
	}

	return nil
}
