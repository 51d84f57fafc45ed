package models

import "time"

// Event subjects for order lifecycle notifications. The HTTP layer
// publishes these after calling the core; the core itself never does.
const (
	EventOrderCreated   = "order.created"
	EventOrderReserved  = "order.reserved"
	EventOrderPaid      = "order.paid"
	EventOrderCancelled = "order.cancelled"
	EventOrderRefunded  = "order.refunded"
	EventOrderExpired   = "order.expired"
)

// OrderEvent is the payload for every order lifecycle subject.
type OrderEvent struct {
	OrderID     string      `json:"order_id"`
	ShowID      string      `json:"show_id"`
	UserID      string      `json:"user_id"`
	Status      OrderStatus `json:"status"`
	SeatIDs     []string    `json:"seat_ids"`
	TotalAmount float64     `json:"total_amount"`
	Timestamp   time.Time   `json:"timestamp"`
}

// EventForOrder builds the payload from an order snapshot.
func EventForOrder(snap OrderSnapshot, at time.Time) OrderEvent {
	return OrderEvent{
		OrderID:     snap.OrderID,
		ShowID:      snap.ShowID,
		UserID:      snap.UserID,
		Status:      snap.Status,
		SeatIDs:     snap.SeatIDs,
		TotalAmount: snap.TotalAmount,
		Timestamp:   at,
	}
}
