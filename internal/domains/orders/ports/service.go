package ports

import (
	"context"

	"github.com/Apurer/go-storefront-api/internal/domains/orders/domain"
)

// Service exposes the order workflow use cases to adapters.
type Service interface {
	// PlaceOrder creates an order for the authenticated caller.
	PlaceOrder(ctx context.Context, actor string, productKeys []string) (*domain.Order, error)
	// PlaceOrderFor creates an order on behalf of any user (admin path) and
	// triggers a best-effort confirmation notification.
	PlaceOrderFor(ctx context.Context, username string, productKeys []string) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByOwner(ctx context.Context, username string) ([]*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	// UpdateStatus overwrites the order status; owner or admin only.
	UpdateStatus(ctx context.Context, id, status, actor string) (*domain.Order, error)
	// CancelOwn deletes the caller's own order within the cancellation
	// window and reverts stock.
	CancelOwn(ctx context.Context, id, actor string) error
	// Remove deletes any order without ownership or window checks (admin
	// path) and reverts stock.
	Remove(ctx context.Context, id string) error
	// IsAdmin resolves the user and reports the administrator role.
	IsAdmin(ctx context.Context, username string) (bool, error)
}
