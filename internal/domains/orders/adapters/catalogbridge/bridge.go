// Package catalogbridge adapts the catalog bounded context to the narrow
// product port consumed by the order workflow.
package catalogbridge

import (
	"context"
	"errors"
	"fmt"

	catalogports "github.com/Apurer/go-storefront-api/internal/domains/catalog/ports"
	ordersports "github.com/Apurer/go-storefront-api/internal/domains/orders/ports"
)

var _ ordersports.Catalog = (*Bridge)(nil)

// Bridge exposes the product repository as the order workflow's catalog,
// translating catalog sentinels into the workflow's own error vocabulary.
type Bridge struct {
	products catalogports.Repository
}

func New(products catalogports.Repository) *Bridge {
	return &Bridge{products: products}
}

func (b *Bridge) GetByKey(ctx context.Context, key string) (ordersports.ProductView, error) {
	product, err := b.products.GetByKey(ctx, key)
	if err != nil {
		return ordersports.ProductView{}, translate(err)
	}
	return ordersports.ProductView{
		Key:   product.Key,
		Name:  product.Name,
		Price: product.Price,
		Stock: product.Stock,
	}, nil
}

func (b *Bridge) DecrementStock(ctx context.Context, key string) error {
	return translate(b.products.DecrementStock(ctx, key))
}

func (b *Bridge) IncrementStock(ctx context.Context, key string) error {
	return translate(b.products.IncrementStock(ctx, key))
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, catalogports.ErrNotFound):
		return fmt.Errorf("%w: %w", ordersports.ErrProductNotFound, err)
	case errors.Is(err, catalogports.ErrOutOfStock):
		return fmt.Errorf("%w: %w", ordersports.ErrOutOfStock, err)
	default:
		return err
	}
}
