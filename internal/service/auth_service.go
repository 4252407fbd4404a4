package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"catalog-be/internal/apperrors"
	"catalog-be/internal/cache"
	"catalog-be/internal/entities"
	"catalog-be/internal/models"
	"catalog-be/internal/repository"
)

// How long a token->user cache entry lives. The user service drops the
// entry on user update or delete, so the TTL only bounds staleness when
// rows change outside the API.
const tokenCacheTTL = 15 * time.Minute

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Register(req *models.RegisterRequest) (*models.RegisterResponse, error)
	Login(req *models.LoginRequest) (*models.LoginResponse, error)
	// Authenticate resolves a raw token key to its user.
	Authenticate(key string) (*entities.User, error)
}

type authService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	cache     cache.Cache
	ctx       context.Context
}

// NewAuthService creates a new auth service. cacheClient may be nil.
func NewAuthService(userRepo repository.UserRepository, tokenRepo repository.TokenRepository, cacheClient cache.Cache) AuthService {
	return &authService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		cache:     cacheClient,
		ctx:       context.Background(),
	}
}

// generateTokenKey returns a 40-character random hex token key
func generateTokenKey() (string, error) {
	bytes := make([]byte, 20)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// Register creates a new user account and returns it with its token
func (s *authService) Register(req *models.RegisterRequest) (*models.RegisterResponse, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// The unique index is the real guard against duplicate usernames; the
	// repository maps its violation to a field-level validation error.
	user, err := s.userRepo.Create(req.Username, string(hashedPassword), req.Email, req.FirstName, req.LastName)
	if err != nil {
		return nil, err
	}

	token, err := s.getOrCreateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &models.RegisterResponse{User: user, Token: token.Key}, nil
}

// Login authenticates a user and returns their token. The same token is
// returned on every successful login.
func (s *authService) Login(req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		// Same message for unknown username and bad password
		return nil, apperrors.Authentication("invalid username or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.Authentication("invalid username or password")
	}

	token, err := s.getOrCreateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token.Key}, nil
}

func (s *authService) getOrCreateToken(userID string) (*entities.Token, error) {
	candidate, err := generateTokenKey()
	if err != nil {
		return nil, err
	}
	return s.tokenRepo.GetOrCreate(userID, candidate)
}

// Authenticate resolves a token key to its user, consulting the cache first
func (s *authService) Authenticate(key string) (*entities.User, error) {
	if key == "" {
		return nil, apperrors.Authentication("missing token")
	}

	cacheKey := "token:" + key
	if s.cache != nil {
		var user entities.User
		if err := s.cache.GetJSON(s.ctx, cacheKey, &user); err == nil && user.ID != "" {
			return &user, nil
		}
	}

	user, err := s.tokenRepo.FindUserByKey(key)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetJSON(s.ctx, cacheKey, user, tokenCacheTTL)
	}

	return user, nil
}
