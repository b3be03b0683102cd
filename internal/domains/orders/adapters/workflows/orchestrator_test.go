package workflows

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	"github.com/Apurer/go-storefront-api/internal/domains/orders/domain"
	orderworkflows "github.com/Apurer/go-storefront-api/internal/platform/temporal/workflows/orders"
)

type fakeTemporalClient struct {
	client.Client

	startErr error

	gotOptions  client.StartWorkflowOptions
	gotWorkflow interface{}
	gotArgs     []interface{}
}

func (f *fakeTemporalClient) ExecuteWorkflow(ctx context.Context, options client.StartWorkflowOptions, workflow interface{}, args ...interface{}) (client.WorkflowRun, error) {
	f.gotOptions = options
	f.gotWorkflow = workflow
	f.gotArgs = args
	if f.startErr != nil {
		return nil, f.startErr
	}
	return nil, nil
}

type fakeNotifier struct {
	confirmed int
	address   string
}

func (f *fakeNotifier) OrderConfirmed(ctx context.Context, address string, order *domain.Order) error {
	f.confirmed++
	f.address = address
	return nil
}

func (f *fakeNotifier) OrderCancelled(ctx context.Context, address string, order *domain.Order) error {
	return nil
}

func testOrder(t *testing.T) *domain.Order {
	t.Helper()
	order, err := domain.NewOrder("alice", []domain.LineItem{
		{ProductKey: "P001", Name: "Mechanical Keyboard", Price: decimal.NewFromFloat(9.99)},
	})
	require.NoError(t, err)
	return order
}

func TestTemporalConfirmations_DispatchesByRegisteredName(t *testing.T) {
	fake := &fakeTemporalClient{}
	dispatcher := NewTemporalConfirmations(fake)
	order := testOrder(t)

	require.NoError(t, dispatcher.DispatchOrderConfirmation(context.Background(), "alice@example.com", order))

	// The worker registers the workflow under its wire name only; dispatching
	// by function reference would submit an unknown workflow type.
	require.Equal(t, orderworkflows.OrderConfirmationWorkflowName, fake.gotWorkflow)
	require.Equal(t, orderworkflows.OrderConfirmationTaskQueue, fake.gotOptions.TaskQueue)
	require.Equal(t, "order-confirmation-"+order.ID, fake.gotOptions.ID)

	require.Len(t, fake.gotArgs, 1)
	input, ok := fake.gotArgs[0].(orderworkflows.OrderConfirmationWorkflowInput)
	require.True(t, ok)
	require.Equal(t, "alice@example.com", input.Address)
	require.Equal(t, order.ID, input.Order.ID)
}

func TestTemporalConfirmations_AlreadyStartedIsNoOp(t *testing.T) {
	fake := &fakeTemporalClient{
		startErr: serviceerror.NewWorkflowExecutionAlreadyStarted("already running", "request-id", "run-id"),
	}
	dispatcher := NewTemporalConfirmations(fake)

	require.NoError(t, dispatcher.DispatchOrderConfirmation(context.Background(), "alice@example.com", testOrder(t)))
}

func TestTemporalConfirmations_PropagatesStartErrors(t *testing.T) {
	fake := &fakeTemporalClient{startErr: errors.New("cluster unreachable")}
	dispatcher := NewTemporalConfirmations(fake)

	err := dispatcher.DispatchOrderConfirmation(context.Background(), "alice@example.com", testOrder(t))
	require.ErrorContains(t, err, "cluster unreachable")
}

func TestTemporalConfirmations_RejectsNilOrder(t *testing.T) {
	dispatcher := NewTemporalConfirmations(&fakeTemporalClient{})
	require.Error(t, dispatcher.DispatchOrderConfirmation(context.Background(), "alice@example.com", nil))
}

func TestInlineConfirmations_DeliversSynchronously(t *testing.T) {
	notifier := &fakeNotifier{}
	dispatcher := NewInlineConfirmations(notifier)

	require.NoError(t, dispatcher.DispatchOrderConfirmation(context.Background(), "alice@example.com", testOrder(t)))
	require.Equal(t, 1, notifier.confirmed)
	require.Equal(t, "alice@example.com", notifier.address)
}
