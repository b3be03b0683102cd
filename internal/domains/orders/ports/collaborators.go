package ports

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Apurer/go-storefront-api/internal/domains/orders/domain"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrUserNotFound    = errors.New("user not found")
	// ErrOutOfStock is surfaced by the catalog when the conditional stock
	// decrement matched no rows.
	ErrOutOfStock = errors.New("product out of stock")
)

// ProductView is the snapshot of a product the order workflow needs.
type ProductView struct {
	Key   string
	Name  string
	Price decimal.Decimal
	Stock int
}

// Catalog is the narrow slice of the product store consumed by the workflow.
// Stock mutations are expressed as conditional operations at the store
// boundary so the workflow never does a read-check-then-write on the counter.
type Catalog interface {
	GetByKey(ctx context.Context, key string) (ProductView, error)
	DecrementStock(ctx context.Context, key string) error
	IncrementStock(ctx context.Context, key string) error
}

// UserView is the slice of an account the order workflow needs.
type UserView struct {
	Username string
	Email    string
	Admin    bool
}

// Directory resolves storefront accounts.
type Directory interface {
	GetByUsername(ctx context.Context, username string) (UserView, error)
}

// AuditSink records append-only workflow facts. Failures never propagate to
// the caller of a successful mutation.
type AuditSink interface {
	Record(ctx context.Context, actor, action, reference string, at time.Time) error
}

// Notifier delivers best-effort customer notifications.
type Notifier interface {
	OrderConfirmed(ctx context.Context, address string, order *domain.Order) error
	OrderCancelled(ctx context.Context, address string, order *domain.Order) error
}

// ConfirmationDispatcher hands the order-confirmation side effect to an
// executor, either inline or on a durable workflow engine.
type ConfirmationDispatcher interface {
	DispatchOrderConfirmation(ctx context.Context, address string, order *domain.Order) error
}
