package service

import (
	"context"
	"strings"
	"time"

	"catalog-be/internal/apperrors"
	"catalog-be/internal/cache"
	"catalog-be/internal/entities"
	"catalog-be/internal/models"
	"catalog-be/internal/repository"
)

const productCacheTTL = 10 * time.Minute

// ProductService defines the interface for product business logic.
// Callers are identified explicitly: callerID is the authenticated user's
// id, never taken from the request payload.
type ProductService interface {
	List(filters models.ProductFilters) ([]*entities.Product, error)
	Get(id string) (*entities.Product, error)
	Create(callerID string, req *models.CreateProductRequest) (*entities.Product, error)
	Update(callerID, id string, req *models.UpdateProductRequest) (*entities.Product, error)
	Delete(callerID, id string) error
}

type productService struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	cache        cache.Cache
	ctx          context.Context
}

// NewProductService creates a new product service. cacheClient may be nil.
func NewProductService(repo repository.ProductRepository, categoryRepo repository.CategoryRepository, cacheClient cache.Cache) ProductService {
	return &productService{
		repo:         repo,
		categoryRepo: categoryRepo,
		cache:        cacheClient,
		ctx:          context.Background(),
	}
}

// List returns products matching the filters, default ordered by
// created_at descending
func (s *productService) List(filters models.ProductFilters) ([]*entities.Product, error) {
	return s.repo.List(filters)
}

// Get returns a single product by id, consulting the cache first
func (s *productService) Get(id string) (*entities.Product, error) {
	cacheKey := "product:" + id
	if s.cache != nil {
		var product entities.Product
		if err := s.cache.GetJSON(s.ctx, cacheKey, &product); err == nil && product.ID != "" {
			return &product, nil
		}
	}

	product, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetJSON(s.ctx, cacheKey, product, productCacheTTL)
	}

	return product, nil
}

// validateName trims and checks the product name
func validateName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", apperrors.ValidationField("name", "name is required")
	}
	return trimmed, nil
}

// checkCategory verifies the referenced category exists
func (s *productService) checkCategory(id string) error {
	if _, err := s.categoryRepo.FindByID(id); err != nil {
		if apperrors.KindOf(err) == apperrors.KindNotFound {
			return apperrors.ValidationField("category", "category does not exist")
		}
		return err
	}
	return nil
}

// Create validates and stores a new product owned by the caller
func (s *productService) Create(callerID string, req *models.CreateProductRequest) (*entities.Product, error) {
	name, err := validateName(req.Name)
	if err != nil {
		return nil, err
	}
	if req.Price <= 0 {
		return nil, apperrors.ValidationField("price", "price must be greater than 0")
	}
	if req.StockQuantity < 0 {
		return nil, apperrors.ValidationField("stock_quantity", "stock quantity cannot be negative")
	}
	if err := s.checkCategory(req.Category); err != nil {
		return nil, err
	}

	product := &entities.Product{
		OwnerID:       callerID,
		Name:          name,
		Description:   req.Description,
		Price:         req.Price,
		CategoryID:    req.Category,
		StockQuantity: req.StockQuantity,
		ImageURL:      req.ImageURL,
	}

	return s.repo.Create(product)
}

// Update applies a partial update to a product owned by the caller.
// Owner and created_at are immutable.
func (s *productService) Update(callerID, id string, req *models.UpdateProductRequest) (*entities.Product, error) {
	product, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if product.OwnerID != callerID {
		return nil, apperrors.Permission("only the owner may modify this product")
	}

	if req.Name != nil {
		name, err := validateName(*req.Name)
		if err != nil {
			return nil, err
		}
		product.Name = name
	}
	if req.Description != nil {
		product.Description = req.Description
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, apperrors.ValidationField("price", "price must be greater than 0")
		}
		product.Price = *req.Price
	}
	if req.Category != nil {
		if err := s.checkCategory(*req.Category); err != nil {
			return nil, err
		}
		product.CategoryID = *req.Category
	}
	if req.StockQuantity != nil {
		if *req.StockQuantity < 0 {
			return nil, apperrors.ValidationField("stock_quantity", "stock quantity cannot be negative")
		}
		product.StockQuantity = *req.StockQuantity
	}
	if req.ImageURL != nil {
		product.ImageURL = req.ImageURL
	}

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}

	s.invalidate(id)

	// Re-read so a changed category is reflected in the joined name
	return s.repo.FindByID(id)
}

// Delete removes a product owned by the caller
func (s *productService) Delete(callerID, id string) error {
	product, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if product.OwnerID != callerID {
		return apperrors.Permission("only the owner may delete this product")
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.invalidate(id)
	return nil
}

func (s *productService) invalidate(id string) {
	if s.cache != nil {
		s.cache.Delete(s.ctx, "product:"+id)
	}
}
