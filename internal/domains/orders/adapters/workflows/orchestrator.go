package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	"github.com/Apurer/go-storefront-api/internal/domains/orders/domain"
	"github.com/Apurer/go-storefront-api/internal/domains/orders/ports"
	orderworkflows "github.com/Apurer/go-storefront-api/internal/platform/temporal/workflows/orders"
)

var (
	_ ports.ConfirmationDispatcher = (*TemporalConfirmations)(nil)
	_ ports.ConfirmationDispatcher = (*InlineConfirmations)(nil)
)

// TemporalConfirmations starts confirmation workflows on a Temporal cluster.
// The caller does not wait for delivery; retries happen on the worker.
type TemporalConfirmations struct {
	client    client.Client
	taskQueue string
}

// NewTemporalConfirmations wires a Temporal client into the dispatcher.
func NewTemporalConfirmations(c client.Client) *TemporalConfirmations {
	return &TemporalConfirmations{client: c, taskQueue: orderworkflows.OrderConfirmationTaskQueue}
}

// DispatchOrderConfirmation starts the confirmation workflow. The workflow ID
// is derived from the order ID, so a retried dispatch for the same order is a
// no-op instead of a duplicate notification.
func (d *TemporalConfirmations) DispatchOrderConfirmation(ctx context.Context, address string, order *domain.Order) error {
	if d == nil || d.client == nil {
		return errors.New("temporal confirmation dispatcher not configured")
	}
	if order == nil {
		return errors.New("order is nil")
	}
	options := client.StartWorkflowOptions{
		ID:        fmt.Sprintf("order-confirmation-%s", order.ID),
		TaskQueue: d.taskQueue,
	}
	// The worker registers the workflow under its wire name, so dispatch by
	// name rather than function reference.
	_, err := d.client.ExecuteWorkflow(
		ctx,
		options,
		orderworkflows.OrderConfirmationWorkflowName,
		orderworkflows.OrderConfirmationWorkflowInput{Address: address, Order: *order, TraceID: workflowTraceID(ctx)},
	)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &alreadyStarted) {
			return nil
		}
		return err
	}
	return nil
}

// InlineConfirmations delivers the confirmation synchronously without
// Temporal, useful for tests or dev fallbacks.
type InlineConfirmations struct {
	notifier ports.Notifier
	timeout  time.Duration
}

// NewInlineConfirmations wraps the notifier for synchronous delivery.
func NewInlineConfirmations(notifier ports.Notifier) *InlineConfirmations {
	return &InlineConfirmations{notifier: notifier, timeout: 30 * time.Second}
}

// DispatchOrderConfirmation delivers the confirmation in the caller's goroutine.
func (d *InlineConfirmations) DispatchOrderConfirmation(ctx context.Context, address string, order *domain.Order) error {
	if d == nil || d.notifier == nil {
		return errors.New("inline confirmation dispatcher not configured")
	}
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()
	return d.notifier.OrderConfirmed(ctx, address, order)
}

func workflowTraceID(ctx context.Context) string {
	span := oteltrace.SpanFromContext(ctx)
	if span == nil {
		return ""
	}
	spanCtx := span.SpanContext()
	if !spanCtx.IsValid() || !spanCtx.TraceID().IsValid() {
		return ""
	}
	return spanCtx.TraceID().String()
}
