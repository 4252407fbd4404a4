package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"catalog-be/internal/apperrors"
	"catalog-be/internal/entities"
	"catalog-be/internal/models"
)

// ProductRepository defines the interface for product database operations
type ProductRepository interface {
	List(filters models.ProductFilters) ([]*entities.Product, error)
	FindByID(id string) (*entities.Product, error)
	Create(product *entities.Product) (*entities.Product, error)
	Update(product *entities.Product) error
	Delete(id string) error
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

const productSelect = `
	SELECT p.id, p.owner_id, u.username, p.name, p.description, p.price,
	       p.category_id, c.name, p.stock_quantity, p.image_url, p.created_at
	FROM products p
	JOIN users u ON u.id = p.owner_id
	JOIN categories c ON c.id = p.category_id
`

func scanProduct(s interface{ Scan(...interface{}) error }) (*entities.Product, error) {
	var product entities.Product
	err := s.Scan(
		&product.ID,
		&product.OwnerID,
		&product.OwnerUsername,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.CategoryID,
		&product.CategoryName,
		&product.StockQuantity,
		&product.ImageURL,
		&product.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// likeEscaper neutralizes LIKE metacharacters in user-supplied search
// terms so they match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildListQuery returns the SQL and arguments for a filtered product
// listing. All filter clauses compose with AND; the ordering field is
// whitelisted during parsing.
func buildListQuery(filters models.ProductFilters) (string, []interface{}) {
	var conds []string
	var args []interface{}

	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filters.CategoryID != nil {
		// text comparison so a malformed UUID matches nothing instead of erroring
		conds = append(conds, "p.category_id::text = "+arg(*filters.CategoryID))
	}
	if filters.MinPrice != nil {
		conds = append(conds, "p.price >= "+arg(*filters.MinPrice))
	}
	if filters.MaxPrice != nil {
		conds = append(conds, "p.price <= "+arg(*filters.MaxPrice))
	}
	if filters.InStock != nil {
		if *filters.InStock {
			conds = append(conds, "p.stock_quantity > 0")
		} else {
			conds = append(conds, "p.stock_quantity = 0")
		}
	}
	if filters.Search != "" {
		pattern := arg("%" + likeEscaper.Replace(filters.Search) + "%")
		conds = append(conds, "(p.name ILIKE "+pattern+" OR c.name ILIKE "+pattern+")")
	}

	query := productSelect
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	direction := "ASC"
	if filters.Descending {
		direction = "DESC"
	}
	query += fmt.Sprintf(" ORDER BY p.%s %s", filters.OrderBy, direction)

	return query, args
}

// List returns products matching the given filters
func (r *productRepository) List(filters models.ProductFilters) ([]*entities.Product, error) {
	query, args := buildListQuery(filters)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []*entities.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// FindByID finds a product by ID (UUID)
func (r *productRepository) FindByID(id string) (*entities.Product, error) {
	query := productSelect + ` WHERE p.id::text = $1`

	product, err := scanProduct(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, apperrors.NotFound("product not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	return product, nil
}

// Create inserts a new product and returns it with joined owner and
// category names
func (r *productRepository) Create(product *entities.Product) (*entities.Product, error) {
	query := `
		INSERT INTO products (owner_id, name, description, price, category_id, stock_quantity, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id string
	err := r.db.QueryRow(query,
		product.OwnerID,
		product.Name,
		product.Description,
		product.Price,
		product.CategoryID,
		product.StockQuantity,
		product.ImageURL,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return r.FindByID(id)
}

// Update persists mutable product fields. Owner and created_at never change.
func (r *productRepository) Update(product *entities.Product) error {
	query := `
		UPDATE products
		SET name = $1, description = $2, price = $3, category_id = $4, stock_quantity = $5, image_url = $6
		WHERE id = $7
	`

	result, err := r.db.Exec(query,
		product.Name,
		product.Description,
		product.Price,
		product.CategoryID,
		product.StockQuantity,
		product.ImageURL,
		product.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFound("product not found")
	}

	return nil
}

// Delete removes a product
func (r *productRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM products WHERE id::text = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFound("product not found")
	}

	return nil
}
