// Package errors defines the booking error taxonomy shared by the
// reservation service and the HTTP layer. Handlers map kinds to status
// codes instead of matching on message text.
package errors

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknown Kind = iota
	// KindValidation covers malformed input: bad seat id tokens, empty
	// seat lists, missing user/show references in the request itself.
	KindValidation
	// KindNotFound covers absent entities: show, user, order, or a seat
	// id outside the room bounds.
	KindNotFound
	// KindConflict covers seats that exist but are LOCKED or SOLD.
	KindConflict
	// KindState covers operations illegal for the order's current status,
	// e.g. paying a CANCELLED order.
	KindState
	// KindExpiry covers acting on a RESERVED order past its lock deadline.
	KindExpiry
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindState:
		return "state"
	case KindExpiry:
		return "expiry"
	default:
		return "unknown"
	}
}

// Error carries enough context to reconstruct a user-facing message:
// the ids involved, the offending seat and a short reason.
type Error struct {
	Kind    Kind
	OrderID string
	SeatID  string
	Reason  string
}

func (e *Error) Error() string {
	msg := e.Reason
	if e.SeatID != "" {
		msg = fmt.Sprintf("seat %s: %s", e.SeatID, msg)
	}
	if e.OrderID != "" {
		msg = fmt.Sprintf("order %s: %s", e.OrderID, msg)
	}
	return msg
}

func Validation(reason string) error {
	return &Error{Kind: KindValidation, Reason: reason}
}

func SeatNotFound(seatID string) error {
	return &Error{Kind: KindNotFound, SeatID: seatID, Reason: "not found"}
}

func SeatTaken(seatID string) error {
	return &Error{Kind: KindConflict, SeatID: seatID, Reason: "already booked"}
}

func NotFound(reason string) error {
	return &Error{Kind: KindNotFound, Reason: reason}
}

func OrderNotFound(orderID string) error {
	return &Error{Kind: KindNotFound, OrderID: orderID, Reason: "order missing"}
}

func State(orderID, reason string) error {
	return &Error{Kind: KindState, OrderID: orderID, Reason: reason}
}

func Expired(orderID string) error {
	return &Error{Kind: KindExpiry, OrderID: orderID, Reason: "lock expired"}
}

// KindOf extracts the kind from any error in the chain, KindUnknown when
// the error did not originate in the booking core.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
