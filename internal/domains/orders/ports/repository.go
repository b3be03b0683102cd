package ports

import (
	"context"
	"errors"

	"github.com/Apurer/go-storefront-api/internal/domains/orders/domain"
)

var ErrNotFound = errors.New("order not found")

// Repository persists orders. Orders only ever enter the store through
// Insert; ids are generated by the workflow and never reused.
type Repository interface {
	Insert(ctx context.Context, order *domain.Order) (*domain.Order, error)
	Update(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByOwner(ctx context.Context, username string) ([]*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	Delete(ctx context.Context, id string) error
}
