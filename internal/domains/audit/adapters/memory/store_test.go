package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-storefront-api/internal/domains/audit/domain"
)

func TestAppendAndList(t *testing.T) {
	store := NewStore()

	entry, err := domain.NewEntry("alice", "ORDER CREATED (SELF)", "order-1", time.Now())
	require.NoError(t, err)
	require.NoError(t, store.Append(context.Background(), entry))

	entry, err = domain.NewEntry("SYSTEM", "ORDER CANCELLED (SELF)", "order-1", time.Now())
	require.NoError(t, err)
	require.NoError(t, store.Append(context.Background(), entry))

	entries, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, int64(1), entries[0].ID)
	require.Equal(t, int64(2), entries[1].ID)
}

func TestListByReference(t *testing.T) {
	store := NewStore()
	for _, ref := range []string{"order-1", "order-2", "order-1"} {
		entry, err := domain.NewEntry("alice", "ORDER CREATED (SELF)", ref, time.Now())
		require.NoError(t, err)
		require.NoError(t, store.Append(context.Background(), entry))
	}

	entries, err := store.ListByReference(context.Background(), "order-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, entry := range entries {
		require.Equal(t, "order-1", entry.Reference)
	}
}
