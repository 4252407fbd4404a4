package entities

// Category represents a product category entity in the database
type Category struct {
	ID   string `json:"id"` // UUID
	Name string `json:"name"`
	Slug string `json:"slug"`
}
