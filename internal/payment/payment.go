// Package payment is the gateway boundary. Whether a payment succeeds is
// a decision supplied by a collaborator; this core never talks to a real
// gateway.
package payment

import (
	"context"
	"errors"
)

// Gateway authorizes a charge for an order. A nil return means the
// payment went through.
type Gateway interface {
	Authorize(ctx context.Context, orderID string, amount float64) error
}

// ErrDeclined is returned by gateways that reject a charge.
var ErrDeclined = errors.New("payment declined")

// SimulatedGateway approves everything unless told to decline; the
// declining mode exists for tests and demos.
type SimulatedGateway struct {
	Decline bool
}

func (g *SimulatedGateway) Authorize(_ context.Context, _ string, _ float64) error {
	if g.Decline {
		return ErrDeclined
	}
	return nil
}
