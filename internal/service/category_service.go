package service

import (
	"strings"

	"catalog-be/internal/apperrors"
	"catalog-be/internal/entities"
	"catalog-be/internal/models"
	"catalog-be/internal/repository"
)

// CategoryService defines the interface for category business logic.
// Write operations require an authenticated caller, which the routing
// layer guarantees; categories have no ownership concept.
type CategoryService interface {
	List() ([]*entities.Category, error)
	Get(id string) (*entities.Category, error)
	Create(req *models.CreateCategoryRequest) (*entities.Category, error)
	Update(id string, req *models.UpdateCategoryRequest) (*entities.Category, error)
	Delete(id string) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

// List returns all categories ordered by name
func (s *categoryService) List() ([]*entities.Category, error) {
	return s.repo.List()
}

// Get returns a single category by id
func (s *categoryService) Get(id string) (*entities.Category, error) {
	return s.repo.FindByID(id)
}

// resolveSlug validates a supplied slug or derives one from the name
func resolveSlug(name string, supplied *string) (string, error) {
	if supplied != nil && *supplied != "" {
		slug := strings.TrimSpace(*supplied)
		if !ValidSlug(slug) {
			return "", apperrors.ValidationField("slug", "slug may only contain lowercase letters, numbers, hyphens, and underscores")
		}
		return slug, nil
	}
	slug := Slugify(name)
	if slug == "" {
		return "", apperrors.ValidationField("slug", "could not derive a slug from the name")
	}
	return slug, nil
}

// Create validates and stores a new category
func (s *categoryService) Create(req *models.CreateCategoryRequest) (*entities.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.ValidationField("name", "name is required")
	}

	slug, err := resolveSlug(name, req.Slug)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(name, slug)
}

// Update applies a partial update to a category
func (s *categoryService) Update(id string, req *models.UpdateCategoryRequest) (*entities.Category, error) {
	category, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.ValidationField("name", "name cannot be empty")
		}
		category.Name = name
	}
	if req.Slug != nil {
		slug := strings.TrimSpace(*req.Slug)
		if !ValidSlug(slug) {
			return nil, apperrors.ValidationField("slug", "slug may only contain lowercase letters, numbers, hyphens, and underscores")
		}
		category.Slug = slug
	}

	if err := s.repo.Update(category); err != nil {
		return nil, err
	}

	return category, nil
}

// Delete removes a category; blocked while products reference it
func (s *categoryService) Delete(id string) error {
	return s.repo.Delete(id)
}
