package orders

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"

	ordersdomain "github.com/Apurer/go-storefront-api/internal/domains/orders/domain"
	ordersports "github.com/Apurer/go-storefront-api/internal/domains/orders/ports"
)

// SendConfirmationActivityName delivers the order confirmation notification.
const SendConfirmationActivityName = "orders.activities.SendConfirmation"

// SendConfirmationInput is the confirmation payload handed to the activity.
type SendConfirmationInput struct {
	Address string
	Order   ordersdomain.Order
}

// Activities groups activities that operate on the orders bounded context.
type Activities struct {
	notifier ordersports.Notifier
}

// NewActivities wires the notifier into the Temporal activities bundle.
func NewActivities(notifier ordersports.Notifier) *Activities {
	return &Activities{notifier: notifier}
}

// SendConfirmation delivers the confirmation for a freshly placed order.
func (a *Activities) SendConfirmation(ctx context.Context, input SendConfirmationInput) error {
	logger := activity.GetLogger(ctx)
	if a == nil || a.notifier == nil {
		logger.Error("order confirmation activity not initialized", "orderId", input.Order.ID)
		return errors.New("order confirmation activity not initialized")
	}
	logger.Info("SendConfirmation activity started", "orderId", input.Order.ID)
	if err := a.notifier.OrderConfirmed(ctx, input.Address, &input.Order); err != nil {
		logger.Error("SendConfirmation activity failed", "orderId", input.Order.ID, "error", err)
		return err
	}
	logger.Info("SendConfirmation activity completed", "orderId", input.Order.ID)
	return nil
}
