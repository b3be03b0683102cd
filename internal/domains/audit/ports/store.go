package ports

import (
	"context"

	"github.com/Apurer/go-storefront-api/internal/domains/audit/domain"
)

// Store persists audit facts. Append-only; there is no update or delete.
type Store interface {
	Append(ctx context.Context, entry domain.Entry) error
	List(ctx context.Context) ([]domain.Entry, error)
	ListByReference(ctx context.Context, reference string) ([]domain.Entry, error)
}
