package models

import (
	"sync"
	"time"
)

// OrderStatus values serialize as the six state names.
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderReserved  OrderStatus = "RESERVED"
	OrderPaid      OrderStatus = "PAID"
	OrderCancelled OrderStatus = "CANCELLED"
	OrderRefunded  OrderStatus = "REFUNDED"
	OrderExpired   OrderStatus = "EXPIRED"
)

// Terminal reports whether no further transition is allowed.
func (s OrderStatus) Terminal() bool {
	switch s {
	case OrderCancelled, OrderRefunded, OrderExpired:
		return true
	default:
		return false
	}
}

// Order aggregates the seats claimed in a single booking. Seats are
// references into the owning show's arena, not copies. TotalAmount is
// frozen at creation; swapping the pricing strategy later does not touch
// it. Orders are never deleted, only transitioned.
//
// The embedded mutex linearizes transitions on one order id: the
// reservation service holds it across the status check, the seat effect
// and the status write.
type Order struct {
	sync.Mutex `json:"-"`

	ID          string      `json:"order_id"`
	ShowID      string      `json:"show_id"`
	UserID      string      `json:"user_id"`
	Seats       []*Seat     `json:"-"`
	CreateTime  time.Time   `json:"create_time"`
	LockExpiry  *time.Time  `json:"lock_expiry,omitempty"`
	Status      OrderStatus `json:"status"`
	TotalAmount float64     `json:"total_amount"`
}

// HoldExpired reports whether a RESERVED hold has lapsed. Caller holds the
// order lock.
func (o *Order) HoldExpired(now time.Time) bool {
	if o.Status != OrderReserved || o.LockExpiry == nil {
		return false
	}
	return now.After(*o.LockExpiry)
}

// SeatIDs lists the wire ids of the order's seats.
func (o *Order) SeatIDs() []string {
	ids := make([]string, len(o.Seats))
	for i, seat := range o.Seats {
		ids[i] = seat.ID()
	}
	return ids
}

// Snapshot captures the order for callers and for persistence.
func (o *Order) Snapshot() OrderSnapshot {
	o.Lock()
	defer o.Unlock()
	return o.snapshotLocked()
}

func (o *Order) snapshotLocked() OrderSnapshot {
	return OrderSnapshot{
		OrderID:     o.ID,
		ShowID:      o.ShowID,
		UserID:      o.UserID,
		SeatIDs:     o.SeatIDs(),
		CreateTime:  o.CreateTime,
		LockExpiry:  o.LockExpiry,
		Status:      o.Status,
		TotalAmount: o.TotalAmount,
	}
}

// OrderSnapshot is the read-only wire and storage form of an order.
type OrderSnapshot struct {
	OrderID     string      `json:"order_id" db:"order_id"`
	ShowID      string      `json:"show_id" db:"show_id"`
	UserID      string      `json:"user_id" db:"user_id"`
	SeatIDs     []string    `json:"seat_ids" db:"seat_ids"`
	CreateTime  time.Time   `json:"create_time" db:"create_time"`
	LockExpiry  *time.Time  `json:"lock_expiry,omitempty" db:"lock_expiry"`
	Status      OrderStatus `json:"status" db:"status"`
	TotalAmount float64     `json:"total_amount" db:"total_amount"`
}
