package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"catalog-be/internal/apperrors"
	"catalog-be/internal/entities"
	"catalog-be/internal/models"
)

type fakeAuthService struct {
	user *entities.User
}

func (f *fakeAuthService) Register(req *models.RegisterRequest) (*models.RegisterResponse, error) {
	return nil, apperrors.Validation("not implemented")
}

func (f *fakeAuthService) Login(req *models.LoginRequest) (*models.LoginResponse, error) {
	return nil, apperrors.Validation("not implemented")
}

func (f *fakeAuthService) Authenticate(key string) (*entities.User, error) {
	if key == "good-token" {
		return f.user, nil
	}
	return nil, apperrors.Authentication("invalid token")
}

func newAuthTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	auth := &fakeAuthService{user: &entities.User{ID: "user-1", Username: "alice"}}

	router := gin.New()
	router.GET("/protected", RequireAuth(auth), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(ContextUserIDKey)})
	})
	return router
}

func doRequest(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	w := doRequest(newAuthTestRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_TokenScheme(t *testing.T) {
	w := doRequest(newAuthTestRouter(), "Token good-token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestRequireAuth_BearerScheme(t *testing.T) {
	w := doRequest(newAuthTestRouter(), "Bearer good-token")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	w := doRequest(newAuthTestRouter(), "Token bad-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_UnknownScheme(t *testing.T) {
	w := doRequest(newAuthTestRouter(), "Basic good-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
