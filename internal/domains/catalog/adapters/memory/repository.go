package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Apurer/go-storefront-api/internal/domains/catalog/domain"
	"github.com/Apurer/go-storefront-api/internal/domains/catalog/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory product persistence adapter.
type Repository struct {
	mu       sync.RWMutex
	products map[string]*domain.Product
}

func NewRepository() *Repository {
	return &Repository{products: map[string]*domain.Product{}}
}

func (r *Repository) Save(_ context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	clone := *product
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	if existing, ok := r.products[clone.Key]; ok {
		clone.CreatedAt = existing.CreatedAt
	} else if clone.CreatedAt.IsZero() {
		clone.CreatedAt = now
	}
	clone.UpdatedAt = now
	r.products[clone.Key] = &clone
	result := clone
	return &result, nil
}

func (r *Repository) GetByKey(_ context.Context, key string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	product, ok := r.products[key]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *product
	return &clone, nil
}

func (r *Repository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[key]; !ok {
		return ports.ErrNotFound
	}
	delete(r.products, key)
	return nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Product, 0, len(r.products))
	for _, product := range r.products {
		clone := *product
		list = append(list, &clone)
	}
	return list, nil
}

// DecrementStock takes one unit while holding the write lock, so the
// check-and-decrement is a single step and stock never goes negative.
func (r *Repository) DecrementStock(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[key]
	if !ok {
		return ports.ErrNotFound
	}
	if product.Stock <= 0 {
		return ports.ErrOutOfStock
	}
	product.Stock--
	product.UpdatedAt = time.Now()
	return nil
}

func (r *Repository) IncrementStock(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[key]
	if !ok {
		return ports.ErrNotFound
	}
	product.Stock++
	product.UpdatedAt = time.Now()
	return nil
}
