package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Apurer/go-storefront-api/internal/domains/catalog/domain"
)

// ProductUpdate carries optional fields for a partial product update.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Stock       *int
}

// Service exposes catalog use cases to adapters.
type Service interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetByKey(ctx context.Context, key string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, key string, update ProductUpdate) (*domain.Product, error)
	Delete(ctx context.Context, key string) error
}
