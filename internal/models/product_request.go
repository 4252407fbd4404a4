package models

// CreateProductRequest represents the request body for creating a product.
// Any owner value in the payload is ignored; the owner is always the
// authenticated caller.
type CreateProductRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   *string `json:"description,omitempty"`
	Price         float64 `json:"price" binding:"required"`
	Category      string  `json:"category" binding:"required"` // category UUID
	StockQuantity int     `json:"stock_quantity"`
	ImageURL      *string `json:"image_url,omitempty"`
}

// UpdateProductRequest represents a partial update to a product. Absent
// fields are left unchanged; present fields are validated as on create.
// Owner and created_at are immutable and have no corresponding fields.
type UpdateProductRequest struct {
	Name          *string  `json:"name,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	Category      *string  `json:"category,omitempty"`
	StockQuantity *int     `json:"stock_quantity,omitempty"`
	ImageURL      *string  `json:"image_url,omitempty"`
}
