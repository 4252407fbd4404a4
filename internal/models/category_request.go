package models

// CreateCategoryRequest represents the request body for creating a category.
// Slug is optional; when absent it is derived from the name.
type CreateCategoryRequest struct {
	Name string  `json:"name" binding:"required"`
	Slug *string `json:"slug,omitempty"`
}

// UpdateCategoryRequest represents a partial update to a category
type UpdateCategoryRequest struct {
	Name *string `json:"name,omitempty"`
	Slug *string `json:"slug,omitempty"`
}
