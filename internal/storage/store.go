// Package storage persists order ledger snapshots. Saves are invoked by
// the reservation service after each mutation and treated as
// fire-and-forget: a failed save is logged by the caller and never rolls
// back the in-memory state.
package storage

import (
	"context"

	"cinehall/internal/models"
)

type Store interface {
	// SaveOrders replaces the durable copy with the given ledger snapshot.
	SaveOrders(ctx context.Context, orders []models.OrderSnapshot) error
	// LoadOrders returns the persisted snapshot, empty when none exists.
	LoadOrders(ctx context.Context) ([]models.OrderSnapshot, error)
}

// NopStore discards saves and loads nothing. Used in tests and when no
// backend is configured.
type NopStore struct{}

func (NopStore) SaveOrders(context.Context, []models.OrderSnapshot) error {
	return nil
}

func (NopStore) LoadOrders(context.Context) ([]models.OrderSnapshot, error) {
	return nil, nil
}
