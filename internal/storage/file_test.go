package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinehall/internal/models"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	// Empty store loads nothing.
	orders, err := store.LoadOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	deadline := time.Date(2026, 3, 4, 12, 15, 0, 0, time.UTC)
	saved := []models.OrderSnapshot{
		{
			OrderID:     "RSV-1",
			ShowID:      "SHOW-T",
			UserID:      "USER-T",
			SeatIDs:     []string{"1-1", "1-2"},
			CreateTime:  deadline.Add(-15 * time.Minute),
			LockExpiry:  &deadline,
			Status:      models.OrderReserved,
			TotalAmount: 120,
		},
		{
			OrderID:     "ORD-2",
			ShowID:      "SHOW-T",
			UserID:      "USER-T",
			SeatIDs:     []string{"4-4"},
			CreateTime:  deadline,
			Status:      models.OrderPaid,
			TotalAmount: 50,
		},
	}
	require.NoError(t, store.SaveOrders(ctx, saved))

	loaded, err := store.LoadOrders(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "RSV-1", loaded[0].OrderID)
	assert.Equal(t, models.OrderReserved, loaded[0].Status)
	require.NotNil(t, loaded[0].LockExpiry)
	assert.True(t, loaded[0].LockExpiry.Equal(deadline))
	assert.Nil(t, loaded[1].LockExpiry)

	// A later save replaces the snapshot wholesale.
	saved[0].Status = models.OrderExpired
	saved[0].LockExpiry = nil
	require.NoError(t, store.SaveOrders(ctx, saved[:1]))

	loaded, err = store.LoadOrders(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, models.OrderExpired, loaded[0].Status)
}
