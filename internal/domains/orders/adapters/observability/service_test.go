package observability

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-storefront-api/internal/domains/orders/domain"
	"github.com/Apurer/go-storefront-api/internal/domains/orders/ports"
)

type stubService struct {
	order *domain.Order
}

func (s *stubService) PlaceOrder(ctx context.Context, actor string, productKeys []string) (*domain.Order, error) {
	return s.order, nil
}

func (s *stubService) PlaceOrderFor(ctx context.Context, username string, productKeys []string) (*domain.Order, error) {
	return s.order, nil
}

func (s *stubService) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	return s.order, nil
}

func (s *stubService) ListByOwner(ctx context.Context, username string) ([]*domain.Order, error) {
	return []*domain.Order{s.order}, nil
}

func (s *stubService) List(ctx context.Context) ([]*domain.Order, error) {
	return []*domain.Order{s.order}, nil
}

func (s *stubService) UpdateStatus(ctx context.Context, id, status, actor string) (*domain.Order, error) {
	return s.order, nil
}

func (s *stubService) CancelOwn(ctx context.Context, id, actor string) error {
	return nil
}

func (s *stubService) Remove(ctx context.Context, id string) error {
	return nil
}

func (s *stubService) IsAdmin(ctx context.Context, username string) (bool, error) {
	return true, nil
}

var _ ports.Service = (*stubService)(nil)

func stubOrder(t *testing.T) *domain.Order {
	t.Helper()
	order, err := domain.NewOrder("alice", []domain.LineItem{
		{ProductKey: "P001", Name: "Mechanical Keyboard", Price: decimal.NewFromFloat(9.99)},
	})
	require.NoError(t, err)
	return order
}

func TestNew_WithoutOptions(t *testing.T) {
	inner := &stubService{order: stubOrder(t)}
	svc := New(inner)
	ctx := context.Background()

	require.NotPanics(t, func() {
		placed, err := svc.PlaceOrder(ctx, "alice", []string{"P001"})
		require.NoError(t, err)
		require.Equal(t, inner.order.ID, placed.ID)

		updated, err := svc.UpdateStatus(ctx, placed.ID, "COMPLETED", "alice")
		require.NoError(t, err)
		require.Equal(t, inner.order.ID, updated.ID)

		require.NoError(t, svc.CancelOwn(ctx, placed.ID, "alice"))
		require.NoError(t, svc.Remove(ctx, placed.ID))
	})
}

func TestNew_NilOptionsTolerated(t *testing.T) {
	inner := &stubService{order: stubOrder(t)}
	svc := New(inner, nil, WithLogger(nil), WithTracer(nil))
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NotPanics(t, func() {
		admin, err := svc.IsAdmin(ctx, "alice")
		require.NoError(t, err)
		require.True(t, admin)

		listed, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, listed, 1)
	})
}
