package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNewOrder_CollapsesDuplicateProducts(t *testing.T) {
	items := []LineItem{
		{ProductKey: "P001", Name: "Mechanical Keyboard", Price: decimal.RequireFromString("59.90")},
		{ProductKey: "P002", Name: "USB Hub", Price: decimal.RequireFromString("19.99")},
		{ProductKey: "P001", Name: "Mechanical Keyboard", Price: decimal.RequireFromString("59.90")},
	}

	order, err := NewOrder("alice", items)
	require.NoError(t, err)
	require.Len(t, order.Items, 2)
	require.Equal(t, []string{"P001", "P002"}, order.ProductKeys())
	require.True(t, order.Total.Equal(decimal.RequireFromString("79.89")), "total %s", order.Total)
}

func TestNewOrder_AssignsFreshIdentifiers(t *testing.T) {
	items := []LineItem{{ProductKey: "P001", Name: "USB Hub", Price: decimal.RequireFromString("19.99")}}

	first, err := NewOrder("alice", items)
	require.NoError(t, err)
	second, err := NewOrder("alice", items)
	require.NoError(t, err)

	require.NotEmpty(t, first.ID)
	require.NotEmpty(t, first.Invoice.Number)
	require.NotEqual(t, first.ID, second.ID)
	require.NotEqual(t, first.Invoice.Number, second.Invoice.Number)
	require.Equal(t, StatusPending, first.Status)
}

func TestNewOrder_RejectsEmptyInput(t *testing.T) {
	_, err := NewOrder("", []LineItem{{ProductKey: "P001"}})
	require.ErrorIs(t, err, ErrEmptyOwner)

	_, err = NewOrder("alice", nil)
	require.ErrorIs(t, err, ErrEmptyItems)
}

func TestToStatus(t *testing.T) {
	status, err := ToStatus(" completed ")
	require.NoError(t, err)
	require.Equal(t, StatusCompleted, status)

	_, err = ToStatus("SHIPPED")
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_DefaultsToPending(t *testing.T) {
	order := &Order{Status: StatusCompleted}
	require.NoError(t, order.UpdateStatus(""))
	require.Equal(t, StatusPending, order.Status)

	require.ErrorIs(t, order.UpdateStatus(Status("SHIPPED")), ErrInvalidStatus)
}

func TestUpdateStatus_AnyStateReachable(t *testing.T) {
	order := &Order{Status: StatusCancelled}
	require.NoError(t, order.UpdateStatus(StatusPending))
	require.NoError(t, order.UpdateStatus(StatusCompleted))
	require.NoError(t, order.UpdateStatus(StatusCancelled))
	require.NoError(t, order.UpdateStatus(StatusCompleted))
}

func TestCancellableAt_WindowBoundary(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	order := &Order{CreatedAt: created}

	require.True(t, order.CancellableAt(created.Add(48*time.Hour)))
	require.True(t, order.CancellableAt(created.Add(CancellationWindow)), "boundary is inclusive")
	require.False(t, order.CancellableAt(created.Add(CancellationWindow+time.Nanosecond)))
	require.False(t, order.CancellableAt(created.Add(4*24*time.Hour)))
}
