package migrations

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Intended to replace adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&productRecord{},
		&orderRecord{},
		&orderItemRecord{},
		&userRecord{},
		&auditRecord{},
	)
}

// Product schema mirrors the catalog Postgres adapter.
type productRecord struct {
	Key         string          `gorm:"primaryKey;column:key;size:64"`
	Name        string          `gorm:"column:name"`
	Description string          `gorm:"column:description"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(12,2)"`
	Stock       int             `gorm:"column:stock"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;index"`
}

func (productRecord) TableName() string { return "products" }

// Order schema mirrors the orders Postgres adapter.
type orderRecord struct {
	ID              string          `gorm:"primaryKey;column:id;size:36"`
	Owner           string          `gorm:"column:owner;size:128;index:idx_orders_owner"`
	Total           decimal.Decimal `gorm:"column:total;type:numeric(12,2)"`
	InvoiceNumber   string          `gorm:"column:invoice_number;size:36;uniqueIndex"`
	InvoiceIssuedAt time.Time       `gorm:"column:invoice_issued_at"`
	Status          string          `gorm:"column:status;type:varchar(32);index"`
	CreatedAt       time.Time       `gorm:"column:created_at;index"`
	UpdatedAt       time.Time       `gorm:"column:updated_at"`
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

// User schema mirrors the users Postgres adapter.
type userRecord struct {
	ID        int64          `gorm:"primaryKey;column:id"`
	Username  string         `gorm:"column:username;uniqueIndex"`
	Email     string         `gorm:"column:email;uniqueIndex"`
	Password  string         `gorm:"column:password_hash"`
	Roles     pq.StringArray `gorm:"column:roles;type:text[]"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
}

func (userRecord) TableName() string { return "users" }

// Audit schema mirrors the audit Postgres adapter.
type auditRecord struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Actor     string    `gorm:"column:actor;size:128;index"`
	Action    string    `gorm:"column:action;size:64"`
	Reference string    `gorm:"column:reference;size:64;index:idx_audit_reference"`
	At        time.Time `gorm:"column:at;index"`
}

func (auditRecord) TableName() string { return "audit_entries" }
