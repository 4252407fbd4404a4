package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"catalog-be/internal/apperrors"
	"catalog-be/internal/cache"
	"catalog-be/internal/entities"
	"catalog-be/internal/models"
	"catalog-be/internal/repository"
)

// UserService defines the interface for user management (admin-style
// endpoints; every operation requires an authenticated caller).
type UserService interface {
	List() ([]*entities.User, error)
	Get(id string) (*entities.User, error)
	Create(req *models.RegisterRequest) (*entities.User, error)
	Update(id string, req *models.UpdateUserRequest) (*entities.User, error)
	Delete(id string) error
}

type userService struct {
	repo      repository.UserRepository
	tokenRepo repository.TokenRepository
	cache     cache.Cache
	ctx       context.Context
}

// NewUserService creates a new user service. cacheClient may be nil.
func NewUserService(repo repository.UserRepository, tokenRepo repository.TokenRepository, cacheClient cache.Cache) UserService {
	return &userService{
		repo:      repo,
		tokenRepo: tokenRepo,
		cache:     cacheClient,
		ctx:       context.Background(),
	}
}

// dropCachedToken evicts the cached token->user entry so authentication
// reflects the mutation immediately instead of after the cache TTL.
func (s *userService) dropCachedToken(userID string) {
	if s.cache == nil {
		return
	}
	key, err := s.tokenRepo.FindKeyByUserID(userID)
	if err != nil || key == "" {
		return
	}
	s.cache.Delete(s.ctx, "token:"+key)
}

func (s *userService) List() ([]*entities.User, error) {
	return s.repo.List()
}

func (s *userService) Get(id string) (*entities.User, error) {
	return s.repo.FindByID(id)
}

// Create adds a user without issuing a token; callers log in separately
func (s *userService) Create(req *models.RegisterRequest) (*entities.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return s.repo.Create(req.Username, string(hashedPassword), req.Email, req.FirstName, req.LastName)
}

// Update applies a partial update; a supplied password is re-hashed
func (s *userService) Update(id string, req *models.UpdateUserRequest) (*entities.User, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if username == "" {
			return nil, apperrors.ValidationField("username", "username cannot be empty")
		}
		user.Username = username
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hashed)
	}
	if req.Email != nil {
		user.Email = req.Email
	}
	if req.FirstName != nil {
		user.FirstName = req.FirstName
	}
	if req.LastName != nil {
		user.LastName = req.LastName
	}

	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	s.dropCachedToken(id)

	return user, nil
}

func (s *userService) Delete(id string) error {
	// Look up the key first: deleting the user cascades to the token row.
	var key string
	if s.cache != nil {
		key, _ = s.tokenRepo.FindKeyByUserID(id)
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	if s.cache != nil && key != "" {
		s.cache.Delete(s.ctx, "token:"+key)
	}
	return nil
}
