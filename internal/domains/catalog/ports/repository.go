package ports

import (
	"context"
	"errors"

	"github.com/Apurer/go-storefront-api/internal/domains/catalog/domain"
)

var (
	ErrNotFound = errors.New("product not found")
	// ErrOutOfStock is returned by DecrementStock when the conditional
	// update matched no rows because the counter already reached zero.
	ErrOutOfStock = errors.New("product out of stock")
)

// Repository persists products and owns the stock counters.
type Repository interface {
	Save(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetByKey(ctx context.Context, key string) (*domain.Product, error)
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) ([]*domain.Product, error)

	// DecrementStock atomically takes one unit where stock > 0 and stamps
	// the update time. It returns ErrOutOfStock when no unit was available
	// and ErrNotFound when the product does not exist.
	DecrementStock(ctx context.Context, key string) error
	// IncrementStock returns one unit and stamps the update time. A missing
	// product is a hard ErrNotFound; reversion is never skipped silently.
	IncrementStock(ctx context.Context, key string) error
}
