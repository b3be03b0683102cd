package mapper

import (
	"time"

	ordersdomain "github.com/Apurer/go-storefront-api/internal/domains/orders/domain"
)

// Order is the transport-layer shape of the purchase aggregate. Monetary
// amounts travel as decimal strings to avoid float rounding on the wire.
type Order struct {
	ID        string     `json:"id"`
	Owner     string     `json:"owner"`
	Items     []LineItem `json:"items"`
	Total     string     `json:"total"`
	Invoice   Invoice    `json:"invoice"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
}

type LineItem struct {
	ProductKey string `json:"productKey"`
	Name       string `json:"name"`
	Price      string `json:"price"`
}

type Invoice struct {
	Number   string    `json:"number"`
	IssuedAt time.Time `json:"issuedAt"`
}

// CreateOrderRequest carries the product keys of a self-service order.
type CreateOrderRequest struct {
	Products []string `json:"products"`
}

// AdminCreateOrderRequest carries the target user and product keys of an
// order placed on a user's behalf.
type AdminCreateOrderRequest struct {
	Username string   `json:"username"`
	Products []string `json:"products"`
}

// UpdateStatusRequest carries the replacement status value.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// FromDomainOrder converts a domain order to the transport representation.
func FromDomainOrder(order *ordersdomain.Order) Order {
	if order == nil {
		return Order{}
	}
	items := make([]LineItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, LineItem{
			ProductKey: item.ProductKey,
			Name:       item.Name,
			Price:      item.Price.StringFixed(2),
		})
	}
	return Order{
		ID:    order.ID,
		Owner: order.Owner,
		Items: items,
		Total: order.Total.StringFixed(2),
		Invoice: Invoice{
			Number:   order.Invoice.Number,
			IssuedAt: order.Invoice.IssuedAt,
		},
		Status:    string(order.Status),
		CreatedAt: order.CreatedAt,
	}
}

// FromDomainOrders converts a list of domain orders.
func FromDomainOrders(orders []*ordersdomain.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, FromDomainOrder(order))
	}
	return result
}
