package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"catalog-be/internal/apperrors"
	"catalog-be/internal/cache"
	"catalog-be/internal/entities"
	"catalog-be/internal/models"
)

// In-memory repository fakes used across the service tests.

type fakeUserRepo struct {
	users map[string]*entities.User // by id
	seq   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entities.User)}
}

func (r *fakeUserRepo) Create(username, passwordHash string, email, firstName, lastName *string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return nil, apperrors.ValidationField("username", "a user with this username already exists")
		}
	}
	r.seq++
	user := &entities.User{
		ID:           fmt.Sprintf("user-%d", r.seq),
		Username:     username,
		PasswordHash: passwordHash,
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	r.users[user.ID] = user
	return user, nil
}

func (r *fakeUserRepo) FindByUsername(username string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, apperrors.NotFound("user not found")
}

func (r *fakeUserRepo) FindByID(id string) (*entities.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, apperrors.NotFound("user not found")
}

func (r *fakeUserRepo) List() ([]*entities.User, error) {
	var out []*entities.User
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeUserRepo) Update(user *entities.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return apperrors.NotFound("user not found")
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	if _, ok := r.users[id]; !ok {
		return apperrors.NotFound("user not found")
	}
	delete(r.users, id)
	return nil
}

type fakeTokenRepo struct {
	users  *fakeUserRepo
	byUser map[string]*entities.Token
}

func newFakeTokenRepo(users *fakeUserRepo) *fakeTokenRepo {
	return &fakeTokenRepo{users: users, byUser: make(map[string]*entities.Token)}
}

func (r *fakeTokenRepo) GetOrCreate(userID, candidateKey string) (*entities.Token, error) {
	if tok, ok := r.byUser[userID]; ok {
		return tok, nil
	}
	tok := &entities.Token{Key: candidateKey, UserID: userID, CreatedAt: time.Now()}
	r.byUser[userID] = tok
	return tok, nil
}

func (r *fakeTokenRepo) FindUserByKey(key string) (*entities.User, error) {
	for userID, tok := range r.byUser {
		if tok.Key == key {
			user, err := r.users.FindByID(userID)
			if err != nil {
				// The join produces no row once the user is gone
				break
			}
			return user, nil
		}
	}
	return nil, apperrors.Authentication("invalid token")
}

func (r *fakeTokenRepo) FindKeyByUserID(userID string) (string, error) {
	if tok, ok := r.byUser[userID]; ok {
		return tok.Key, nil
	}
	return "", nil
}

// fakeCache is a map-backed Cache; expirations are ignored.
type fakeCache struct {
	entries map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]string)}
}

func (c *fakeCache) Get(ctx context.Context, key string) (string, error) {
	if v, ok := c.entries[key]; ok {
		return v, nil
	}
	return "", cache.ErrCacheMiss
}

func (c *fakeCache) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	c.entries[key] = value
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, key string) error {
	delete(c.entries, key)
	return nil
}

func (c *fakeCache) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, string(data), expiration)
}

func (c *fakeCache) GetJSON(ctx context.Context, key string, dest interface{}) error {
	data, err := c.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(data), dest)
}

type fakeCategoryRepo struct {
	categories map[string]*entities.Category
	inUse      map[string]bool // referenced by products
	seq        int
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		categories: make(map[string]*entities.Category),
		inUse:      make(map[string]bool),
	}
}

func (r *fakeCategoryRepo) List() ([]*entities.Category, error) {
	var out []*entities.Category
	for _, c := range r.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeCategoryRepo) FindByID(id string) (*entities.Category, error) {
	if c, ok := r.categories[id]; ok {
		return c, nil
	}
	return nil, apperrors.NotFound("category not found")
}

func (r *fakeCategoryRepo) Create(name, slug string) (*entities.Category, error) {
	for _, c := range r.categories {
		if c.Slug == slug {
			return nil, apperrors.Conflict("a category with this slug already exists").WithField("slug", "already taken")
		}
	}
	r.seq++
	category := &entities.Category{ID: fmt.Sprintf("cat-%d", r.seq), Name: name, Slug: slug}
	r.categories[category.ID] = category
	return category, nil
}

func (r *fakeCategoryRepo) Update(category *entities.Category) error {
	if _, ok := r.categories[category.ID]; !ok {
		return apperrors.NotFound("category not found")
	}
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) Delete(id string) error {
	if _, ok := r.categories[id]; !ok {
		return apperrors.NotFound("category not found")
	}
	if r.inUse[id] {
		return apperrors.Conflict("category is still referenced by products and cannot be deleted")
	}
	delete(r.categories, id)
	return nil
}

type fakeProductRepo struct {
	products   map[string]*entities.Product
	categories *fakeCategoryRepo
	seq        int
}

func newFakeProductRepo(categories *fakeCategoryRepo) *fakeProductRepo {
	return &fakeProductRepo{
		products:   make(map[string]*entities.Product),
		categories: categories,
	}
}

func (r *fakeProductRepo) List(filters models.ProductFilters) ([]*entities.Product, error) {
	var out []*entities.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeProductRepo) FindByID(id string) (*entities.Product, error) {
	if p, ok := r.products[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, apperrors.NotFound("product not found")
}

func (r *fakeProductRepo) Create(product *entities.Product) (*entities.Product, error) {
	r.seq++
	copied := *product
	copied.ID = fmt.Sprintf("prod-%d", r.seq)
	copied.CreatedAt = time.Now()
	if cat, err := r.categories.FindByID(copied.CategoryID); err == nil {
		copied.CategoryName = cat.Name
		r.categories.inUse[cat.ID] = true
	}
	r.products[copied.ID] = &copied
	return r.FindByID(copied.ID)
}

func (r *fakeProductRepo) Update(product *entities.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return apperrors.NotFound("product not found")
	}
	copied := *product
	if cat, err := r.categories.FindByID(copied.CategoryID); err == nil {
		copied.CategoryName = cat.Name
	}
	r.products[product.ID] = &copied
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	if _, ok := r.products[id]; !ok {
		return apperrors.NotFound("product not found")
	}
	delete(r.products, id)
	return nil
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func intPtr(i int) *int { return &i }
