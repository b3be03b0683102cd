package application

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-storefront-api/internal/domains/catalog/adapters/memory"
	"github.com/Apurer/go-storefront-api/internal/domains/catalog/domain"
	"github.com/Apurer/go-storefront-api/internal/domains/catalog/ports"
)

func newProduct(t *testing.T, key string) *domain.Product {
	t.Helper()
	product, err := domain.NewProduct(key, "Keyboard", decimal.RequireFromString("59.90"), 3)
	require.NoError(t, err)
	return product
}

func TestCreate_PersistsProduct(t *testing.T) {
	svc := NewService(memory.NewRepository())

	saved, err := svc.Create(context.Background(), newProduct(t, "P001"))
	require.NoError(t, err)
	require.Equal(t, "P001", saved.Key)
	require.False(t, saved.CreatedAt.IsZero())
}

func TestCreate_RejectsInvalidProduct(t *testing.T) {
	svc := NewService(memory.NewRepository())

	_, err := svc.Create(context.Background(), &domain.Product{Key: "P001", Name: "Keyboard"})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrInvalidPrice)
}

func TestUpdate_AppliesPartialMutation(t *testing.T) {
	svc := NewService(memory.NewRepository())
	_, err := svc.Create(context.Background(), newProduct(t, "P001"))
	require.NoError(t, err)

	name := "Ergonomic Keyboard"
	stock := 7
	updated, err := svc.Update(context.Background(), "P001", ports.ProductUpdate{Name: &name, Stock: &stock})
	require.NoError(t, err)
	require.Equal(t, "Ergonomic Keyboard", updated.Name)
	require.Equal(t, 7, updated.Stock)
	require.True(t, updated.Price.Equal(decimal.RequireFromString("59.90")), "untouched fields survive")
}

func TestUpdate_RejectsNonPositivePrice(t *testing.T) {
	svc := NewService(memory.NewRepository())
	_, err := svc.Create(context.Background(), newProduct(t, "P001"))
	require.NoError(t, err)

	zero := decimal.Zero
	_, err = svc.Update(context.Background(), "P001", ports.ProductUpdate{Price: &zero})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_UnknownKey(t *testing.T) {
	svc := NewService(memory.NewRepository())

	_, err := svc.Update(context.Background(), "missing", ports.ProductUpdate{})
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestDelete(t *testing.T) {
	svc := NewService(memory.NewRepository())
	_, err := svc.Create(context.Background(), newProduct(t, "P001"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "P001"))
	require.ErrorIs(t, svc.Delete(context.Background(), "P001"), ports.ErrNotFound)
}
