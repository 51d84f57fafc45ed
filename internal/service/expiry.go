package service

import (
	"context"

	"cinehall/internal/logger"
	"cinehall/internal/models"
)

// ExpireStaleReservations scans RESERVED orders and reclaims every hold
// past its lock deadline: the order becomes EXPIRED and its seats return
// to AVAILABLE. There is no timer: the sweep runs only when a caller
// invokes it, and re-running it after a sweep is a no-op. It returns the
// reclaimed orders so the caller can count them and notify.
func (s *ReservationService) ExpireStaleReservations(ctx context.Context) []models.OrderSnapshot {
	now := s.now()
	var expired []models.OrderSnapshot

	for _, order := range s.ledger.All() {
		order.Lock()
		if !order.HoldExpired(now) {
			order.Unlock()
			continue
		}
		if show, ok := s.catalog.Show(order.ShowID); ok {
			show.ReleaseSeats(order.Seats)
		}
		order.Status = models.OrderExpired
		order.Unlock()

		expired = append(expired, order.Snapshot())
		logger.WithContext(ctx).Info("reservation expired", "order_id", order.ID)
	}

	if len(expired) > 0 {
		s.persist(ctx)
	}
	return expired
}
