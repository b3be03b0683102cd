package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Apurer/go-storefront-api/internal/domains/audit/domain"
	"github.com/Apurer/go-storefront-api/internal/domains/audit/ports"
)

var _ ports.Store = (*Store)(nil)

// Store persists audit facts in PostgreSQL using GORM.
type Store struct {
	db *gorm.DB
}

// NewStore wires a PostgreSQL-backed audit log. Caller manages DB lifecycle.
func NewStore(db *gorm.DB) *Store {
	store := &Store{db: db}
	if db != nil {
		_ = db.AutoMigrate(&auditRecord{})
	}
	return store
}

type auditRecord struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Actor     string    `gorm:"column:actor;size:128;index"`
	Action    string    `gorm:"column:action;size:64"`
	Reference string    `gorm:"column:reference;size:64;index:idx_audit_reference"`
	At        time.Time `gorm:"column:at;index"`
}

func (auditRecord) TableName() string { return "audit_entries" }

func (s *Store) Append(ctx context.Context, entry domain.Entry) error {
	if err := s.ensureDB(); err != nil {
		return err
	}
	record := auditRecord{
		Actor:     entry.Actor,
		Action:    entry.Action,
		Reference: entry.Reference,
		At:        entry.At,
	}
	return s.db.WithContext(ctx).Create(&record).Error
}

func (s *Store) List(ctx context.Context) ([]domain.Entry, error) {
	if err := s.ensureDB(); err != nil {
		return nil, err
	}
	var records []auditRecord
	if err := s.db.WithContext(ctx).Order("at ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return toDomainSlice(records), nil
}

func (s *Store) ListByReference(ctx context.Context, reference string) ([]domain.Entry, error) {
	if err := s.ensureDB(); err != nil {
		return nil, err
	}
	var records []auditRecord
	if err := s.db.WithContext(ctx).
		Where("reference = ?", reference).
		Order("at ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return toDomainSlice(records), nil
}

func (s *Store) ensureDB() error {
	if s == nil || s.db == nil {
		return errors.New("postgres audit store not configured")
	}
	return nil
}

func toDomainSlice(records []auditRecord) []domain.Entry {
	entries := make([]domain.Entry, 0, len(records))
	for _, record := range records {
		entries = append(entries, domain.Entry{
			ID:        record.ID,
			Actor:     record.Actor,
			Action:    record.Action,
			Reference: record.Reference,
			At:        record.At,
		})
	}
	return entries
}
