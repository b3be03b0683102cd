//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Apurer/go-storefront-api/internal/domains/catalog/domain"
	"github.com/Apurer/go-storefront-api/internal/domains/catalog/ports"
	"github.com/Apurer/go-storefront-api/internal/platform/migrations"
)

func setupCatalogPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("storefront_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func randomProduct(t *testing.T, stock int) *domain.Product {
	t.Helper()
	product, err := domain.NewProduct(
		gofakeit.LetterN(6),
		gofakeit.ProductName(),
		decimal.NewFromFloat(gofakeit.Price(1, 100)).Round(2),
		stock,
	)
	require.NoError(t, err)
	return product
}

func TestRepository_SaveAndGetByKey(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCatalogPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	product := randomProduct(t, 3)
	saved, err := repo.Save(ctx, product)
	require.NoError(t, err)
	assert.Equal(t, product.Key, saved.Key)

	fetched, err := repo.GetByKey(ctx, product.Key)
	require.NoError(t, err)
	assert.Equal(t, product.Name, fetched.Name)
	assert.True(t, product.Price.Equal(fetched.Price))
	assert.Equal(t, 3, fetched.Stock)
}

func TestRepository_SaveUpserts(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCatalogPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	product := randomProduct(t, 3)
	_, err := repo.Save(ctx, product)
	require.NoError(t, err)

	require.NoError(t, product.Rename("Renamed Widget"))
	updated, err := repo.Save(ctx, product)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Widget", updated.Name)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRepository_DecrementStock(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCatalogPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	product := randomProduct(t, 1)
	_, err := repo.Save(ctx, product)
	require.NoError(t, err)

	require.NoError(t, repo.DecrementStock(ctx, product.Key))

	err = repo.DecrementStock(ctx, product.Key)
	assert.ErrorIs(t, err, ports.ErrOutOfStock)

	fetched, err := repo.GetByKey(ctx, product.Key)
	require.NoError(t, err)
	assert.Equal(t, 0, fetched.Stock, "stock never goes negative")

	err = repo.DecrementStock(ctx, "missing")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestRepository_IncrementStock(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCatalogPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	product := randomProduct(t, 0)
	_, err := repo.Save(ctx, product)
	require.NoError(t, err)

	require.NoError(t, repo.IncrementStock(ctx, product.Key))
	fetched, err := repo.GetByKey(ctx, product.Key)
	require.NoError(t, err)
	assert.Equal(t, 1, fetched.Stock)

	assert.ErrorIs(t, repo.IncrementStock(ctx, "missing"), ports.ErrNotFound)
}

func TestRepository_Delete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCatalogPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	product := randomProduct(t, 1)
	_, err := repo.Save(ctx, product)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, product.Key))
	_, err = repo.GetByKey(ctx, product.Key)
	assert.ErrorIs(t, err, ports.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, product.Key), ports.ErrNotFound)
}
