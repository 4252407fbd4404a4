package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-be/internal/entities"
	"catalog-be/internal/models"
	"catalog-be/internal/service"
)

type CategoryController struct {
	categoryService service.CategoryService
}

func NewCategoryController(categoryService service.CategoryService) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
	}
}

// List handles GET /api/v1/categories (public)
func (cc *CategoryController) List(c *gin.Context) {
	categories, err := cc.categoryService.List()
	if err != nil {
		respondError(c, err)
		return
	}

	if categories == nil {
		categories = []*entities.Category{}
	}

	c.JSON(http.StatusOK, categories)
}

// Get handles GET /api/v1/categories/:id (public)
func (cc *CategoryController) Get(c *gin.Context) {
	category, err := cc.categoryService.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// Create handles POST /api/v1/categories
func (cc *CategoryController) Create(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	category, err := cc.categoryService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

// Update handles PUT and PATCH /api/v1/categories/:id
func (cc *CategoryController) Update(c *gin.Context) {
	var req models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	category, err := cc.categoryService.Update(c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// Delete handles DELETE /api/v1/categories/:id
func (cc *CategoryController) Delete(c *gin.Context) {
	if err := cc.categoryService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
