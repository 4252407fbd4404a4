package entities

import "time"

// Product represents a product entity in the database.
// OwnerUsername and CategoryName are denormalized read-only fields
// populated by joins on list/get queries.
type Product struct {
	ID            string    `json:"id"`       // UUID
	OwnerID       string    `json:"owner_id"` // UUID, set server-side, immutable
	OwnerUsername string    `json:"owner"`
	Name          string    `json:"name"`
	Description   *string   `json:"description,omitempty"`
	Price         float64   `json:"price"`
	CategoryID    string    `json:"category"` // UUID
	CategoryName  string    `json:"category_name"`
	StockQuantity int       `json:"stock_quantity"`
	ImageURL      *string   `json:"image_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
