package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNewProduct_Validates(t *testing.T) {
	product, err := NewProduct(" P001 ", " Keyboard ", decimal.RequireFromString("59.90"), 3)
	require.NoError(t, err)
	require.Equal(t, "P001", product.Key)
	require.Equal(t, "Keyboard", product.Name)
	require.Equal(t, 3, product.Stock)

	_, err = NewProduct("", "Keyboard", decimal.RequireFromString("1"), 0)
	require.ErrorIs(t, err, ErrEmptyKey)

	_, err = NewProduct("P001", "  ", decimal.RequireFromString("1"), 0)
	require.ErrorIs(t, err, ErrEmptyName)

	_, err = NewProduct("P001", "Keyboard", decimal.Zero, 0)
	require.ErrorIs(t, err, ErrInvalidPrice)

	_, err = NewProduct("P001", "Keyboard", decimal.RequireFromString("1"), -1)
	require.ErrorIs(t, err, ErrNegativeStock)
}

func TestProduct_Orderable(t *testing.T) {
	product, err := NewProduct("P001", "Keyboard", decimal.RequireFromString("9.99"), 1)
	require.NoError(t, err)
	require.True(t, product.Orderable())

	require.NoError(t, product.Restock(0))
	require.False(t, product.Orderable())
}

func TestProduct_UpdatePriceRejectsNegative(t *testing.T) {
	product, err := NewProduct("P001", "Keyboard", decimal.RequireFromString("9.99"), 1)
	require.NoError(t, err)

	require.ErrorIs(t, product.UpdatePrice(decimal.RequireFromString("-1")), ErrInvalidPrice)
	require.True(t, product.Price.Equal(decimal.RequireFromString("9.99")))
}
