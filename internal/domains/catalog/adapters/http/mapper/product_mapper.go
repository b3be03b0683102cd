package mapper

import (
	"time"

	"github.com/shopspring/decimal"

	catalogdomain "github.com/Apurer/go-storefront-api/internal/domains/catalog/domain"
	catalogports "github.com/Apurer/go-storefront-api/internal/domains/catalog/ports"
)

// Product is the transport-layer shape of a catalog product. Prices travel
// as decimal strings.
type Product struct {
	Key         string    `json:"key"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       string    `json:"price"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateProductRequest carries a new product definition.
type CreateProductRequest struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Stock       int    `json:"stock"`
}

// UpdateProductRequest carries a partial product update; absent fields stay
// untouched.
type UpdateProductRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
	Stock       *int    `json:"stock"`
}

// ToDomainProduct converts a create request into the catalog domain model.
func ToDomainProduct(req CreateProductRequest) (*catalogdomain.Product, error) {
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return nil, err
	}
	product, err := catalogdomain.NewProduct(req.Key, req.Name, price, req.Stock)
	if err != nil {
		return nil, err
	}
	product.Description = req.Description
	return product, nil
}

// ToProductUpdate converts an update request into the service input.
func ToProductUpdate(req UpdateProductRequest) (catalogports.ProductUpdate, error) {
	update := catalogports.ProductUpdate{
		Name:        req.Name,
		Description: req.Description,
		Stock:       req.Stock,
	}
	if req.Price != nil {
		price, err := decimal.NewFromString(*req.Price)
		if err != nil {
			return catalogports.ProductUpdate{}, err
		}
		update.Price = &price
	}
	return update, nil
}

// FromDomainProduct converts a domain product to the transport representation.
func FromDomainProduct(product *catalogdomain.Product) Product {
	if product == nil {
		return Product{}
	}
	return Product{
		Key:         product.Key,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price.StringFixed(2),
		Stock:       product.Stock,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

// FromDomainProducts converts a list of domain products.
func FromDomainProducts(products []*catalogdomain.Product) []Product {
	result := make([]Product, 0, len(products))
	for _, product := range products {
		result = append(result, FromDomainProduct(product))
	}
	return result
}
