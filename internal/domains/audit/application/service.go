package application

import (
	"context"
	"fmt"
	"time"

	"github.com/Apurer/go-storefront-api/internal/domains/audit/domain"
	"github.com/Apurer/go-storefront-api/internal/domains/audit/ports"
)

// Service records audit facts for the other bounded contexts. It satisfies
// the sink ports those contexts declare for themselves.
type Service struct {
	store ports.Store
}

func NewService(store ports.Store) *Service {
	return &Service{store: store}
}

// Record validates and appends one audit fact.
func (s *Service) Record(ctx context.Context, actor, action, reference string, at time.Time) error {
	entry, err := domain.NewEntry(actor, action, reference, at)
	if err != nil {
		return fmt.Errorf("invalid audit entry: %w", err)
	}
	return s.store.Append(ctx, entry)
}

// List returns all recorded facts.
func (s *Service) List(ctx context.Context) ([]domain.Entry, error) {
	return s.store.List(ctx)
}

// ListByReference returns the facts recorded against one reference, e.g. an
// order id.
func (s *Service) ListByReference(ctx context.Context, reference string) ([]domain.Entry, error) {
	return s.store.ListByReference(ctx, reference)
}
