package orders

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	ordersdomain "github.com/Apurer/go-storefront-api/internal/domains/orders/domain"
	orderactivities "github.com/Apurer/go-storefront-api/internal/platform/temporal/activities/orders"
)

const (
	// OrderConfirmationWorkflowName is the public identifier for registering the workflow.
	OrderConfirmationWorkflowName = "orders.workflows.Confirmation"
	// OrderConfirmationTaskQueue is the queue consumed by the worker processing confirmation workflows.
	OrderConfirmationTaskQueue = "ORDER_CONFIRMATION"
)

// OrderConfirmationWorkflowInput carries the confirmation payload. The order
// is passed by value so the workflow history holds the snapshot that was
// actually confirmed.
type OrderConfirmationWorkflowInput struct {
	Address string
	Order   ordersdomain.Order
	TraceID string
}

// OrderConfirmationWorkflow delivers the order confirmation with retries.
func OrderConfirmationWorkflow(ctx workflow.Context, input OrderConfirmationWorkflowInput) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("OrderConfirmationWorkflow started", withTraceID(input.TraceID, "orderId", input.Order.ID)...)

	options := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    30 * time.Second,
			MaximumAttempts:    5,
		},
	}
	activityInput := orderactivities.SendConfirmationInput{Address: input.Address, Order: input.Order}
	if err := workflow.ExecuteActivity(workflow.WithActivityOptions(ctx, options),
		orderactivities.SendConfirmationActivityName, activityInput).Get(ctx, nil); err != nil {
		logger.Error("OrderConfirmationWorkflow failed", withTraceID(input.TraceID, "orderId", input.Order.ID, "error", err)...)
		return err
	}
	logger.Info("OrderConfirmationWorkflow completed", withTraceID(input.TraceID, "orderId", input.Order.ID)...)
	return nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
