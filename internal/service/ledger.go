package service

import (
	"sort"
	"sync"

	"cinehall/internal/models"
)

// Ledger is the authoritative store of all orders, keyed by order id.
// Orders are inserted once and never removed; status changes go through
// the reservation service.
type Ledger struct {
	mu     sync.RWMutex
	orders map[string]*models.Order
}

func NewLedger() *Ledger {
	return &Ledger{orders: make(map[string]*models.Order)}
}

func (l *Ledger) Put(o *models.Order) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.orders[o.ID] = o
}

func (l *Ledger) Get(id string) (*models.Order, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	o, ok := l.orders[id]
	return o, ok
}

// All returns the live orders in creation order.
func (l *Ledger) All() []*models.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*models.Order, 0, len(l.orders))
	for _, o := range l.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreateTime.Before(out[j].CreateTime) })
	return out
}

// Snapshot captures every order for persistence.
func (l *Ledger) Snapshot() []models.OrderSnapshot {
	orders := l.All()
	snaps := make([]models.OrderSnapshot, len(orders))
	for i, o := range orders {
		snaps[i] = o.Snapshot()
	}
	return snaps
}

func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.orders)
}
