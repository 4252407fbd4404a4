package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-be/internal/apperrors"
	"catalog-be/internal/entities"
	"catalog-be/internal/models"
)

// registerAuthService accepts each username once, like the unique index does.
type registerAuthService struct {
	seen map[string]bool
}

func (f *registerAuthService) Register(req *models.RegisterRequest) (*models.RegisterResponse, error) {
	if f.seen == nil {
		f.seen = make(map[string]bool)
	}
	if f.seen[req.Username] {
		return nil, apperrors.ValidationField("username", "a user with this username already exists")
	}
	f.seen[req.Username] = true
	return &models.RegisterResponse{
		User:  &entities.User{ID: "user-1", Username: req.Username},
		Token: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
	}, nil
}

func (f *registerAuthService) Login(req *models.LoginRequest) (*models.LoginResponse, error) {
	return nil, apperrors.Authentication("invalid username or password")
}

func (f *registerAuthService) Authenticate(key string) (*entities.User, error) {
	return nil, apperrors.Authentication("invalid token")
}

func TestRegister_DuplicateUsernameIsBadRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ac := NewAuthController(&registerAuthService{})

	router := gin.New()
	router.POST("/api/v1/auth/register", ac.Register)

	body := `{"username":"alice","password":"hunter22"}`

	w := serve(router, http.MethodPost, "/api/v1/auth/register", "", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = serve(router, http.MethodPost, "/api/v1/auth/register", "", body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Code   string            `json:"code"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(apperrors.KindValidation), resp.Code)
	assert.Contains(t, resp.Fields, "username")
}
