package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Apurer/go-storefront-api/internal/domains/orders/domain"
	"github.com/Apurer/go-storefront-api/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists orders in PostgreSQL using GORM. Line items live in a
// child table and are replaced wholesale on update; they are immutable
// snapshots, never edited row by row.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&orderRecord{}, &orderItemRecord{})
	}
	return repo
}

type orderRecord struct {
	ID              string            `gorm:"primaryKey;column:id;size:36"`
	Owner           string            `gorm:"column:owner;size:128;index:idx_orders_owner"`
	Total           decimal.Decimal   `gorm:"column:total;type:numeric(12,2)"`
	InvoiceNumber   string            `gorm:"column:invoice_number;size:36;uniqueIndex"`
	InvoiceIssuedAt time.Time         `gorm:"column:invoice_issued_at"`
	Status          string            `gorm:"column:status;type:varchar(32);index"`
	CreatedAt       time.Time         `gorm:"column:created_at;index"`
	UpdatedAt       time.Time         `gorm:"column:updated_at"`
	Items           []orderItemRecord `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (orderRecord) TableName() string { return "orders" }

type orderItemRecord struct {
	ID         int64           `gorm:"primaryKey;autoIncrement;column:id"`
	OrderID    string          `gorm:"column:order_id;size:36;index:idx_order_items_order"`
	ProductKey string          `gorm:"column:product_key;size:64"`
	Name       string          `gorm:"column:name;size:255"`
	Price      decimal.Decimal `gorm:"column:price;type:numeric(12,2)"`
}

func (orderItemRecord) TableName() string { return "order_items" }

// Insert stores a freshly created order with its line items.
func (r *Repository) Insert(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	record := toRecord(order)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// Update overwrites the mutable columns of an existing order. Line items are
// snapshots and stay untouched.
func (r *Repository) Update(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	result := r.db.WithContext(ctx).Model(&orderRecord{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"status":     string(order.Status),
			"updated_at": gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ports.ErrNotFound
	}
	return r.GetByID(ctx, order.ID)
}

// GetByID fetches an order with its line items.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).Preload("Items").First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// ListByOwner returns the orders owned by the given username.
func (r *Repository) ListByOwner(ctx context.Context, username string) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderRecord
	if err := r.db.WithContext(ctx).Preload("Items").
		Where("owner = ?", username).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return toDomainSlice(records), nil
}

// List returns all orders.
func (r *Repository) List(ctx context.Context) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderRecord
	if err := r.db.WithContext(ctx).Preload("Items").
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return toDomainSlice(records), nil
}

// Delete removes an order and, through the cascade, its line items.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Select(clause.Associations).Delete(&orderRecord{ID: id})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}

func toRecord(order *domain.Order) orderRecord {
	items := make([]orderItemRecord, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemRecord{
			OrderID:    order.ID,
			ProductKey: item.ProductKey,
			Name:       item.Name,
			Price:      item.Price,
		})
	}
	return orderRecord{
		ID:              order.ID,
		Owner:           order.Owner,
		Total:           order.Total,
		InvoiceNumber:   order.Invoice.Number,
		InvoiceIssuedAt: order.Invoice.IssuedAt,
		Status:          string(order.Status),
		CreatedAt:       order.CreatedAt,
		Items:           items,
	}
}

func (r orderRecord) toDomain() *domain.Order {
	items := make([]domain.LineItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, domain.LineItem{
			ProductKey: item.ProductKey,
			Name:       item.Name,
			Price:      item.Price,
		})
	}
	return &domain.Order{
		ID:        r.ID,
		Owner:     r.Owner,
		Items:     items,
		Total:     r.Total,
		Invoice:   domain.Invoice{Number: r.InvoiceNumber, IssuedAt: r.InvoiceIssuedAt},
		Status:    domain.Status(r.Status),
		CreatedAt: r.CreatedAt,
	}
}

func toDomainSlice(records []orderRecord) []*domain.Order {
	orders := make([]*domain.Order, 0, len(records))
	for i := range records {
		orders = append(orders, records[i].toDomain())
	}
	return orders
}
