package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-be/internal/entities"
	"catalog-be/internal/models"
	"catalog-be/internal/service"
)

type ProductController struct {
	productService service.ProductService
}

func NewProductController(productService service.ProductService) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

// List handles GET /api/v1/products (public). Supported query parameters:
// category, min_price, max_price, in_stock, search, ordering.
func (pc *ProductController) List(c *gin.Context) {
	filters := models.ParseProductFilters(c.Request.URL.Query())

	products, err := pc.productService.List(filters)
	if err != nil {
		respondError(c, err)
		return
	}

	// Empty result is an empty array, not null
	if products == nil {
		products = []*entities.Product{}
	}

	c.JSON(http.StatusOK, products)
}

// Get handles GET /api/v1/products/:id (public)
func (pc *ProductController) Get(c *gin.Context) {
	product, err := pc.productService.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// Create handles POST /api/v1/products. The owner is always the
// authenticated caller, never taken from the payload.
func (pc *ProductController) Create(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product, err := pc.productService.Create(caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

// Update handles PUT and PATCH /api/v1/products/:id (owner only)
func (pc *ProductController) Update(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product, err := pc.productService.Update(caller, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /api/v1/products/:id (owner only)
func (pc *ProductController) Delete(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	if err := pc.productService.Delete(caller, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
