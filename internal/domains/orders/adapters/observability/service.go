package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	ordersdomain "github.com/Apurer/go-storefront-api/internal/domains/orders/domain"
	ordersports "github.com/Apurer/go-storefront-api/internal/domains/orders/ports"
)

const tracerName = "github.com/Apurer/go-storefront-api/internal/domains/orders/adapters/observability/service"

// Service decorates the order workflow with tracing, logging, and metrics.
type Service struct {
	inner   ordersports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core order service.
func New(inner ordersports.Service, opts ...Option) ordersports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *Service) PlaceOrder(ctx context.Context, actor string, productKeys []string) (*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.PlaceOrder",
		trace.WithAttributes(attribute.String("order.owner", actor), attribute.Int("order.requested_products", len(productKeys))))
	defer span.End()

	s.logInfo(ctx, "placing order", slog.String("order.owner", actor), slog.Int("order.requested_products", len(productKeys)))
	result, err := s.inner.PlaceOrder(ctx, actor, productKeys)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to place order", slog.String("order.owner", actor))
	}
	s.metrics.recordPlaced(ctx, "self")
	s.logInfo(ctx, "order placed", slog.String("order.id", result.ID), slog.String("order.owner", result.Owner))
	return result, nil
}

func (s *Service) PlaceOrderFor(ctx context.Context, username string, productKeys []string) (*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.PlaceOrderFor",
		trace.WithAttributes(attribute.String("order.owner", username), attribute.Int("order.requested_products", len(productKeys))))
	defer span.End()

	s.logInfo(ctx, "placing order on behalf of user", slog.String("order.owner", username))
	result, err := s.inner.PlaceOrderFor(ctx, username, productKeys)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to place order for user", slog.String("order.owner", username))
	}
	s.metrics.recordPlaced(ctx, "admin")
	s.logInfo(ctx, "order placed", slog.String("order.id", result.ID), slog.String("order.owner", result.Owner))
	return result, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.GetByID", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	result, err := s.inner.GetByID(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load order", slog.String("order.id", id))
	}
	return result, nil
}

func (s *Service) ListByOwner(ctx context.Context, username string) ([]*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.ListByOwner", trace.WithAttributes(attribute.String("order.owner", username)))
	defer span.End()

	result, err := s.inner.ListByOwner(ctx, username)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders by owner", slog.String("order.owner", username))
	}
	span.SetAttributes(attribute.Int("order.count", len(result)))
	return result, nil
}

func (s *Service) List(ctx context.Context) ([]*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.List")
	defer span.End()

	result, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders")
	}
	span.SetAttributes(attribute.Int("order.count", len(result)))
	return result, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id, status, actor string) (*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.UpdateStatus",
		trace.WithAttributes(attribute.String("order.id", id), attribute.String("order.status", status)))
	defer span.End()

	s.logInfo(ctx, "updating order status", slog.String("order.id", id), slog.String("order.status", status))
	result, err := s.inner.UpdateStatus(ctx, id, status, actor)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update order status", slog.String("order.id", id))
	}
	s.metrics.recordStatusChanged(ctx, result.Status)
	s.logInfo(ctx, "order status updated", slog.String("order.id", result.ID), slog.String("order.status", string(result.Status)))
	return result, nil
}

func (s *Service) CancelOwn(ctx context.Context, id, actor string) error {
	ctx, span := s.tracer.Start(ctx, "OrderService.CancelOwn", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	s.logInfo(ctx, "cancelling order", slog.String("order.id", id))
	if err := s.inner.CancelOwn(ctx, id, actor); err != nil {
		return s.handleError(ctx, span, err, "failed to cancel order", slog.String("order.id", id))
	}
	s.metrics.recordCancelled(ctx)
	s.logInfo(ctx, "order cancelled", slog.String("order.id", id))
	return nil
}

func (s *Service) Remove(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "OrderService.Remove", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	s.logInfo(ctx, "removing order", slog.String("order.id", id))
	if err := s.inner.Remove(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to remove order", slog.String("order.id", id))
	}
	s.metrics.recordRemoved(ctx)
	s.logInfo(ctx, "order removed", slog.String("order.id", id))
	return nil
}

func (s *Service) IsAdmin(ctx context.Context, username string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.IsAdmin", trace.WithAttributes(attribute.String("user.name", username)))
	defer span.End()

	result, err := s.inner.IsAdmin(ctx, username)
	if err != nil {
		return false, s.handleError(ctx, span, err, "failed to resolve admin role", slog.String("user.name", username))
	}
	return result, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

type serviceMetrics struct {
	ordersPlaced    metric.Int64Counter
	statusChanges   metric.Int64Counter
	ordersCancelled metric.Int64Counter
	ordersRemoved   metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	ordersPlaced, _ := m.Int64Counter("orders.service.placed", metric.WithDescription("Number of orders placed"))
	statusChanges, _ := m.Int64Counter("orders.service.status_changes", metric.WithDescription("Number of order status updates"))
	ordersCancelled, _ := m.Int64Counter("orders.service.cancelled", metric.WithDescription("Number of orders cancelled by their owner"))
	ordersRemoved, _ := m.Int64Counter("orders.service.removed", metric.WithDescription("Number of orders removed by an administrator"))
	return serviceMetrics{
		ordersPlaced:    ordersPlaced,
		statusChanges:   statusChanges,
		ordersCancelled: ordersCancelled,
		ordersRemoved:   ordersRemoved,
	}
}

func (m serviceMetrics) recordPlaced(ctx context.Context, path string) {
	if m.ordersPlaced != nil {
		m.ordersPlaced.Add(ctx, 1, metric.WithAttributes(attribute.String("order.path", path)))
	}
}

func (m serviceMetrics) recordStatusChanged(ctx context.Context, status ordersdomain.Status) {
	if m.statusChanges != nil {
		m.statusChanges.Add(ctx, 1, metric.WithAttributes(attribute.String("order.status", string(status))))
	}
}

func (m serviceMetrics) recordCancelled(ctx context.Context) {
	if m.ordersCancelled != nil {
		m.ordersCancelled.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordRemoved(ctx context.Context) {
	if m.ordersRemoved != nil {
		m.ordersRemoved.Add(ctx, 1)
	}
}

var _ ordersports.Service = (*Service)(nil)
