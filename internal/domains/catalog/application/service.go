package application

import (
	"context"
	"errors"

	"github.com/Apurer/go-storefront-api/internal/domains/catalog/domain"
	"github.com/Apurer/go-storefront-api/internal/domains/catalog/ports"
)

// Service orchestrates catalog administration use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// Create persists a new product after enforcing aggregate invariants.
func (s *Service) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	if err := product.Validate(); err != nil {
		return nil, mapError(err)
	}
	saved, err := s.repo.Save(ctx, product)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

func (s *Service) GetByKey(ctx context.Context, key string) (*domain.Product, error) {
	product, err := s.repo.GetByKey(ctx, key)
	if err != nil {
		return nil, mapError(err)
	}
	return product, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return products, nil
}

// Update applies a partial mutation to an existing product. The business key
// itself never changes.
func (s *Service) Update(ctx context.Context, key string, update ports.ProductUpdate) (*domain.Product, error) {
	product, err := s.repo.GetByKey(ctx, key)
	if err != nil {
		return nil, mapError(err)
	}
	if update.Name != nil {
		if err := product.Rename(*update.Name); err != nil {
			return nil, mapError(err)
		}
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.Price != nil {
		if err := product.UpdatePrice(*update.Price); err != nil {
			return nil, mapError(err)
		}
	}
	if update.Stock != nil {
		if err := product.Restock(*update.Stock); err != nil {
			return nil, mapError(err)
		}
	}
	saved, err := s.repo.Save(ctx, product)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

func (s *Service) Delete(ctx context.Context, key string) error {
	if err := s.repo.Delete(ctx, key); err != nil {
		return mapError(err)
	}
	return nil
}

var _ ports.Service = (*Service)(nil)
