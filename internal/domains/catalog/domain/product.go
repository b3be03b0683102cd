package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyKey      = errors.New("product key is required")
	ErrEmptyName     = errors.New("product name is required")
	ErrInvalidPrice  = errors.New("product price must be greater than zero")
	ErrNegativeStock = errors.New("product stock cannot be negative")
)

// Product models a sellable catalog entry. Key is the stable business
// identifier and is immutable once assigned.
type Product struct {
	Key         string
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProduct validates and constructs a new Product aggregate.
func NewProduct(key, name string, price decimal.Decimal, stock int) (*Product, error) {
	product := &Product{Key: strings.TrimSpace(key)}
	if product.Key == "" {
		return nil, ErrEmptyKey
	}
	if err := product.Rename(name); err != nil {
		return nil, err
	}
	if err := product.UpdatePrice(price); err != nil {
		return nil, err
	}
	if err := product.Restock(stock); err != nil {
		return nil, err
	}
	return product, nil
}

// Rename trims and validates the display name.
func (p *Product) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	p.Name = name
	return nil
}

// UpdatePrice rejects non-positive prices; a product without a positive
// price can never be ordered.
func (p *Product) UpdatePrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return ErrInvalidPrice
	}
	p.Price = price
	return nil
}

// Restock replaces the stock counter. Stock never goes below zero.
func (p *Product) Restock(stock int) error {
	if stock < 0 {
		return ErrNegativeStock
	}
	p.Stock = stock
	return nil
}

// Orderable reports whether the product can appear on a new order.
func (p *Product) Orderable() bool {
	return p.Stock > 0 && p.Price.IsPositive()
}

// Validate re-applies core invariants for persistence.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Key) == "" {
		return ErrEmptyKey
	}
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if !p.Price.IsPositive() {
		return ErrInvalidPrice
	}
	if p.Stock < 0 {
		return ErrNegativeStock
	}
	return nil
}
