// Package notifier consumes order lifecycle events and delivers
// user-facing notifications. Delivery here is a structured log line; a
// real channel (mail, push) would slot in behind the same consumer.
package notifier

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nats-io/stan.go"

	"cinehall/internal/messaging"
	"cinehall/internal/models"
)

var subjects = []string{
	models.EventOrderCreated,
	models.EventOrderReserved,
	models.EventOrderPaid,
	models.EventOrderCancelled,
	models.EventOrderRefunded,
	models.EventOrderExpired,
}

type Notifier struct {
	nats *messaging.NATSClient
	subs []stan.Subscription
}

func New(nats *messaging.NATSClient) *Notifier {
	return &Notifier{nats: nats}
}

// Start subscribes to every order subject on a shared queue group so
// multiple notifier instances split the load.
func (n *Notifier) Start() error {
	for _, subject := range subjects {
		sub, err := n.nats.SubscribeQueue(subject, "notifier", n.handle)
		if err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
		}
		n.subs = append(n.subs, sub)
	}
	slog.Info("Notifier started", "subjects", len(subjects))
	return nil
}

func (n *Notifier) handle(msg *stan.Msg) {
	var event models.OrderEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		slog.Error("Failed to decode order event", "error", err, "subject", msg.Subject)
		return
	}

	slog.Info("Order notification",
		"user_id", event.UserID,
		"order_id", event.OrderID,
		"message", messageFor(msg.Subject, event))
}

func messageFor(subject string, event models.OrderEvent) string {
	switch subject {
	case models.EventOrderCreated:
		return fmt.Sprintf("Order %s created, total %.2f.", event.OrderID, event.TotalAmount)
	case models.EventOrderReserved:
		return fmt.Sprintf("Seats held for order %s. Please pay within 15 minutes.", event.OrderID)
	case models.EventOrderPaid:
		return fmt.Sprintf("Payment received for order %s. Your seats are confirmed.", event.OrderID)
	case models.EventOrderCancelled:
		return fmt.Sprintf("Order %s has been cancelled.", event.OrderID)
	case models.EventOrderRefunded:
		return fmt.Sprintf("Order %s refunded. The amount will be returned to you.", event.OrderID)
	case models.EventOrderExpired:
		return fmt.Sprintf("Order %s expired and its seats were released.", event.OrderID)
	default:
		return fmt.Sprintf("Order %s updated.", event.OrderID)
	}
}

func (n *Notifier) Stop() {
	for _, sub := range n.subs {
		sub.Close()
	}
}
