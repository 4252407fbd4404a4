package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-be/internal/entities"
	"catalog-be/internal/models"
	"catalog-be/internal/service"
)

type UserController struct {
	userService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// List handles GET /api/v1/users
func (uc *UserController) List(c *gin.Context) {
	users, err := uc.userService.List()
	if err != nil {
		respondError(c, err)
		return
	}

	if users == nil {
		users = []*entities.User{}
	}

	c.JSON(http.StatusOK, users)
}

// Create handles POST /api/v1/users
func (uc *UserController) Create(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := uc.userService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Get handles GET /api/v1/users/:id
func (uc *UserController) Get(c *gin.Context) {
	user, err := uc.userService.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Update handles PUT and PATCH /api/v1/users/:id
func (uc *UserController) Update(c *gin.Context) {
	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := uc.userService.Update(c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /api/v1/users/:id
func (uc *UserController) Delete(c *gin.Context) {
	if err := uc.userService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
