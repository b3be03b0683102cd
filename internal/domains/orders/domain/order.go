package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status enumerates order states. The set is closed; any status is reachable
// from any other, so there is no transition graph to enforce.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// CancellationWindow is how long after creation the owning user may still
// cancel the order.
const CancellationWindow = 3 * 24 * time.Hour

var (
	ErrEmptyOwner    = errors.New("order owner is required")
	ErrEmptyItems    = errors.New("order must contain at least one line item")
	ErrInvalidStatus = errors.New("order status is invalid")
)

// ToStatus parses a raw value against the closed status set.
func ToStatus(raw string) (Status, error) {
	status := Status(strings.ToUpper(strings.TrimSpace(raw)))
	if !isValidStatus(status) {
		return "", ErrInvalidStatus
	}
	return status, nil
}

func isValidStatus(status Status) bool {
	switch status {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// LineItem is a snapshot of a product captured at order time. Later catalog
// edits never change it.
type LineItem struct {
	ProductKey string
	Name       string
	Price      decimal.Decimal
}

// Invoice is the billing record embedded in an order. Its number is freshly
// generated on every create, never copied from an existing order.
type Invoice struct {
	Number   string
	IssuedAt time.Time
}

// Order models the purchase aggregate. One unit per distinct product key;
// Total is the sum of the captured line-item prices.
type Order struct {
	ID        string
	Owner     string
	Items     []LineItem
	Total     decimal.Decimal
	Invoice   Invoice
	Status    Status
	CreatedAt time.Time
}

// NewOrder builds a pending order from line-item snapshots: duplicates are
// collapsed to the first snapshot per product key, the total is recomputed,
// and fresh order and invoice identifiers are assigned.
func NewOrder(owner string, items []LineItem) (*Order, error) {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return nil, ErrEmptyOwner
	}
	seen := make(map[string]struct{}, len(items))
	unique := make([]LineItem, 0, len(items))
	total := decimal.Zero
	for _, item := range items {
		if _, ok := seen[item.ProductKey]; ok {
			continue
		}
		seen[item.ProductKey] = struct{}{}
		unique = append(unique, item)
		total = total.Add(item.Price)
	}
	if len(unique) == 0 {
		return nil, ErrEmptyItems
	}
	now := time.Now()
	return &Order{
		ID:        uuid.NewString(),
		Owner:     owner,
		Items:     unique,
		Total:     total,
		Invoice:   Invoice{Number: uuid.NewString(), IssuedAt: now},
		Status:    StatusPending,
		CreatedAt: now,
	}, nil
}

// ProductKeys returns the distinct product keys referenced by the line items,
// in item order.
func (o *Order) ProductKeys() []string {
	keys := make([]string, 0, len(o.Items))
	for _, item := range o.Items {
		keys = append(keys, item.ProductKey)
	}
	return keys
}

// UpdateStatus ensures only known states are accepted and defaults to pending.
func (o *Order) UpdateStatus(status Status) error {
	if status == "" {
		status = StatusPending
	}
	if !isValidStatus(status) {
		return ErrInvalidStatus
	}
	o.Status = status
	return nil
}

// CancellableAt reports whether the cancellation window is still open at the
// given instant. The boundary is inclusive: at exactly three days the order
// may still be cancelled, only strictly later attempts are rejected.
func (o *Order) CancellableAt(now time.Time) bool {
	return now.Sub(o.CreatedAt) <= CancellationWindow
}

// Validate enforces invariants on the aggregate.
func (o *Order) Validate() error {
	if strings.TrimSpace(o.Owner) == "" {
		return ErrEmptyOwner
	}
	if len(o.Items) == 0 {
		return ErrEmptyItems
	}
	if !isValidStatus(o.Status) {
		return ErrInvalidStatus
	}
	return nil
}
