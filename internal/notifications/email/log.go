package email

import (
	"context"
	"log/slog"

	ordersdomain "github.com/Apurer/go-storefront-api/internal/domains/orders/domain"
	ordersports "github.com/Apurer/go-storefront-api/internal/domains/orders/ports"
)

var _ ordersports.Notifier = (*LogNotifier)(nil)

// LogNotifier writes notifications to the structured log instead of an SMTP
// relay, used when no relay is configured.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) OrderConfirmed(ctx context.Context, address string, order *ordersdomain.Order) error {
	n.logger.LogAttrs(ctx, slog.LevelInfo, "order confirmation (log only)",
		slog.String("order.id", order.ID), slog.String("recipient", address),
		slog.String("order.total", order.Total.StringFixed(2)))
	return nil
}

func (n *LogNotifier) OrderCancelled(ctx context.Context, address string, order *ordersdomain.Order) error {
	n.logger.LogAttrs(ctx, slog.LevelInfo, "order cancellation notice (log only)",
		slog.String("order.id", order.ID), slog.String("recipient", address))
	return nil
}
