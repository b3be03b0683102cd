package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/Apurer/go-storefront-api/internal/domains/orders/domain"
	"github.com/Apurer/go-storefront-api/internal/domains/orders/ports"
)

// Audit action labels written by the workflow.
const (
	AuditOrderCreatedSelf  = "ORDER CREATED (SELF)"
	AuditOrderCreatedAdmin = "ORDER CREATED (ADMIN)"
	AuditOrderCancelled    = "ORDER CANCELLED (SELF)"
	AuditOrderDeleted      = "ORDER DELETED (ADMIN)"

	// AuditActorSystem is recorded when no user identity is attached to the
	// audit fact, e.g. on self-cancel.
	AuditActorSystem = "SYSTEM"
)

// Service orchestrates the order workflow: creation, status transitions, and
// cancellation, keeping product stock consistent across every mutation.
type Service struct {
	orders        ports.Repository
	catalog       ports.Catalog
	directory     ports.Directory
	audit         ports.AuditSink
	notifier      ports.Notifier
	confirmations ports.ConfirmationDispatcher
	logger        *slog.Logger
}

type Option func(*Service)

// WithAuditSink attaches the append-only audit collaborator.
func WithAuditSink(sink ports.AuditSink) Option {
	return func(s *Service) { s.audit = sink }
}

// WithNotifier attaches the customer notification collaborator.
func WithNotifier(notifier ports.Notifier) Option {
	return func(s *Service) { s.notifier = notifier }
}

// WithConfirmationDispatcher attaches the order-confirmation executor.
func WithConfirmationDispatcher(dispatcher ports.ConfirmationDispatcher) Option {
	return func(s *Service) { s.confirmations = dispatcher }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// NewService wires the order workflow with its collaborators. Audit,
// notifier, and dispatcher are optional; their absence only silences the
// corresponding best-effort side effect.
func NewService(orders ports.Repository, catalog ports.Catalog, directory ports.Directory, opts ...Option) *Service {
	s := &Service{
		orders:    orders,
		catalog:   catalog,
		directory: directory,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// PlaceOrder creates an order for the authenticated caller. The total is
// always recomputed from catalog prices; a caller-supplied total is never
// trusted on this path.
func (s *Service) PlaceOrder(ctx context.Context, actor string, productKeys []string) (*domain.Order, error) {
	user, err := s.directory.GetByUsername(ctx, actor)
	if err != nil {
		return nil, mapError(err)
	}
	order, err := s.createOrder(ctx, user.Username, productKeys)
	if err != nil {
		return nil, err
	}
	s.recordAudit(ctx, user.Username, AuditOrderCreatedSelf, order.ID)
	return order, nil
}

// PlaceOrderFor creates an order on behalf of the given user (admin path)
// and dispatches a best-effort confirmation to the user's contact address.
func (s *Service) PlaceOrderFor(ctx context.Context, username string, productKeys []string) (*domain.Order, error) {
	user, err := s.directory.GetByUsername(ctx, username)
	if err != nil {
		return nil, mapError(err)
	}
	order, err := s.createOrder(ctx, user.Username, productKeys)
	if err != nil {
		return nil, err
	}
	s.recordAudit(ctx, user.Username, AuditOrderCreatedAdmin, order.ID)
	s.dispatchConfirmation(ctx, user.Email, order)
	return order, nil
}

// createOrder debits one unit of stock per distinct requested product,
// snapshots the line items, and persists the new aggregate. When any step
// fails after stock was already debited, the debited units are released
// again so a rejected request leaves the counters untouched.
func (s *Service) createOrder(ctx context.Context, owner string, productKeys []string) (*domain.Order, error) {
	keys := lo.Uniq(lo.FilterMap(productKeys, func(key string, _ int) (string, bool) {
		key = strings.TrimSpace(key)
		return key, key != ""
	}))
	if len(keys) == 0 {
		return nil, ErrEmptyProductSet
	}

	items := make([]domain.LineItem, 0, len(keys))
	debited := make([]string, 0, len(keys))
	for _, key := range keys {
		product, err := s.catalog.GetByKey(ctx, key)
		if err != nil {
			s.releaseStock(ctx, debited)
			return nil, mapError(err)
		}
		if err := s.catalog.DecrementStock(ctx, key); err != nil {
			s.releaseStock(ctx, debited)
			return nil, mapError(err)
		}
		debited = append(debited, key)
		items = append(items, domain.LineItem{
			ProductKey: product.Key,
			Name:       product.Name,
			Price:      product.Price,
		})
	}

	order, err := domain.NewOrder(owner, items)
	if err != nil {
		s.releaseStock(ctx, debited)
		return nil, mapError(err)
	}
	saved, err := s.orders.Insert(ctx, order)
	if err != nil {
		s.releaseStock(ctx, debited)
		return nil, err
	}
	return saved, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	return s.orders.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, username string) ([]*domain.Order, error) {
	return s.orders.ListByOwner(ctx, username)
}

func (s *Service) List(ctx context.Context) ([]*domain.Order, error) {
	return s.orders.List(ctx)
}

// UpdateStatus overwrites the order status. Any of the three states is
// reachable from any other; only the value itself and the caller's grant are
// checked. A pure status change has no stock or invoice side effects.
func (s *Service) UpdateStatus(ctx context.Context, id, status, actor string) (*domain.Order, error) {
	parsed, err := domain.ToStatus(status)
	if err != nil {
		return nil, mapError(err)
	}
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	grant, err := s.mutationGrant(ctx, actor, order)
	if err != nil {
		return nil, err
	}
	if grant == grantDenied {
		return nil, ErrNotOwner
	}
	if err := order.UpdateStatus(parsed); err != nil {
		return nil, mapError(err)
	}
	return s.orders.Update(ctx, order)
}

// CancelOwn deletes the caller's own order while the cancellation window is
// open, returning one unit of stock per distinct line item.
func (s *Service) CancelOwn(ctx context.Context, id, actor string) error {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order.Owner != strings.TrimSpace(actor) {
		return ErrNotOwner
	}
	if !order.CancellableAt(time.Now()) {
		return ErrCancelWindowExpired
	}
	if err := s.revertStock(ctx, order); err != nil {
		return err
	}
	if err := s.orders.Delete(ctx, order.ID); err != nil {
		return err
	}
	s.recordAudit(ctx, AuditActorSystem, AuditOrderCancelled, order.ID)
	s.notifyCancelled(ctx, order)
	return nil
}

// Remove deletes any order without ownership or window checks (admin path),
// reverting stock identically to a self-cancel.
func (s *Service) Remove(ctx context.Context, id string) error {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.revertStock(ctx, order); err != nil {
		return err
	}
	if err := s.orders.Delete(ctx, order.ID); err != nil {
		return err
	}
	s.recordAudit(ctx, AuditActorSystem, AuditOrderDeleted, order.ID)
	return nil
}

// IsAdmin resolves the user and reports whether the role set contains the
// administrator role.
func (s *Service) IsAdmin(ctx context.Context, username string) (bool, error) {
	user, err := s.directory.GetByUsername(ctx, username)
	if err != nil {
		return false, mapError(err)
	}
	return user.Admin, nil
}

type grant int

const (
	grantDenied grant = iota
	grantOwner
	grantAdmin
)

// mutationGrant is the single capability check consumed by every mutating
// entry point: the actor must own the order or hold the administrator role.
func (s *Service) mutationGrant(ctx context.Context, actor string, order *domain.Order) (grant, error) {
	user, err := s.directory.GetByUsername(ctx, actor)
	if err != nil {
		return grantDenied, mapError(err)
	}
	if user.Admin {
		return grantAdmin, nil
	}
	if order.Owner == user.Username {
		return grantOwner, nil
	}
	return grantDenied, nil
}

// revertStock returns one unit per distinct line-item product. A missing
// product is a hard failure; reversion is never skipped silently.
func (s *Service) revertStock(ctx context.Context, order *domain.Order) error {
	for _, key := range order.ProductKeys() {
		if err := s.catalog.IncrementStock(ctx, key); err != nil {
			return mapError(err)
		}
	}
	return nil
}

// releaseStock compensates stock debits of a create that failed midway. The
// order was never persisted at this point, so failures here can only be
// logged.
func (s *Service) releaseStock(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := s.catalog.IncrementStock(ctx, key); err != nil {
			s.logger.LogAttrs(ctx, slog.LevelError, "failed to release debited stock",
				slog.String("product.key", key), slog.String("error", err.Error()))
		}
	}
}

func (s *Service) recordAudit(ctx context.Context, actor, action, reference string) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Record(ctx, actor, action, reference, time.Now()); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "audit record failed",
			slog.String("action", action), slog.String("order.id", reference), slog.String("error", err.Error()))
	}
}

func (s *Service) dispatchConfirmation(ctx context.Context, address string, order *domain.Order) {
	if s.confirmations == nil {
		return
	}
	if err := s.confirmations.DispatchOrderConfirmation(ctx, address, order); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "order confirmation dispatch failed",
			slog.String("order.id", order.ID), slog.String("error", err.Error()))
	}
}

func (s *Service) notifyCancelled(ctx context.Context, order *domain.Order) {
	if s.notifier == nil {
		return
	}
	user, err := s.directory.GetByUsername(ctx, order.Owner)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "cancellation notice skipped, owner not resolved",
			slog.String("order.id", order.ID), slog.String("error", err.Error()))
		return
	}
	if err := s.notifier.OrderCancelled(ctx, user.Email, order); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "cancellation notice failed",
			slog.String("order.id", order.ID), slog.String("error", err.Error()))
	}
}

var _ ports.Service = (*Service)(nil)
