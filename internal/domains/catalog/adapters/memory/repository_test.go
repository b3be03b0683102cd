package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-storefront-api/internal/domains/catalog/domain"
	"github.com/Apurer/go-storefront-api/internal/domains/catalog/ports"
)

func seedProduct(t *testing.T, repo *Repository, key string, stock int) {
	t.Helper()
	product, err := domain.NewProduct(key, "Widget", decimal.RequireFromString("9.99"), stock)
	require.NoError(t, err)
	_, err = repo.Save(context.Background(), product)
	require.NoError(t, err)
}

func TestDecrementStock_StopsAtZero(t *testing.T) {
	repo := NewRepository()
	seedProduct(t, repo, "P001", 1)

	require.NoError(t, repo.DecrementStock(context.Background(), "P001"))
	err := repo.DecrementStock(context.Background(), "P001")
	require.ErrorIs(t, err, ports.ErrOutOfStock)

	product, err := repo.GetByKey(context.Background(), "P001")
	require.NoError(t, err)
	require.Equal(t, 0, product.Stock)
}

func TestDecrementStock_UnknownKey(t *testing.T) {
	repo := NewRepository()
	err := repo.DecrementStock(context.Background(), "missing")
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestDecrementStock_Concurrent(t *testing.T) {
	repo := NewRepository()
	seedProduct(t, repo, "P001", 5)

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.DecrementStock(context.Background(), "P001")
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
		} else {
			require.ErrorIs(t, err, ports.ErrOutOfStock)
		}
	}
	require.Equal(t, 5, succeeded, "exactly the available units were sold")

	product, err := repo.GetByKey(context.Background(), "P001")
	require.NoError(t, err)
	require.Equal(t, 0, product.Stock)
}

func TestIncrementStock(t *testing.T) {
	repo := NewRepository()
	seedProduct(t, repo, "P001", 0)

	require.NoError(t, repo.IncrementStock(context.Background(), "P001"))
	product, err := repo.GetByKey(context.Background(), "P001")
	require.NoError(t, err)
	require.Equal(t, 1, product.Stock)

	require.ErrorIs(t, repo.IncrementStock(context.Background(), "missing"), ports.ErrNotFound)
}

func TestSave_PreservesCreatedAt(t *testing.T) {
	repo := NewRepository()
	seedProduct(t, repo, "P001", 1)

	first, err := repo.GetByKey(context.Background(), "P001")
	require.NoError(t, err)

	first.Stock = 10
	_, err = repo.Save(context.Background(), first)
	require.NoError(t, err)

	second, err := repo.GetByKey(context.Background(), "P001")
	require.NoError(t, err)
	require.Equal(t, first.CreatedAt, second.CreatedAt)
	require.Equal(t, 10, second.Stock)
}
