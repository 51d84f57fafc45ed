package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"cinehall/internal/errors"
	"cinehall/internal/logger"
	"cinehall/internal/models"
	"cinehall/internal/payment"
	"cinehall/internal/pricing"
	"cinehall/internal/storage"
)

// HoldTTL is the window a RESERVED order keeps its seats before the
// expiry sweep may reclaim them.
const HoldTTL = 15 * time.Minute

// Catalog is the read-only collaborator for show and user lookups.
type Catalog interface {
	Show(id string) (*models.Show, bool)
	User(id string) (*models.User, bool)
}

// ReservationService is the only writer of seat state and order state. It
// owns the ledger, locks seats through each show's critical section,
// drives the order state machine and runs the explicit expiry sweep.
type ReservationService struct {
	catalog Catalog
	store   storage.Store
	gateway payment.Gateway
	ledger  *Ledger

	mu       sync.RWMutex
	strategy pricing.Strategy

	now func() time.Time
}

type Option func(*ReservationService)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *ReservationService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithStrategy sets the initial pricing strategy.
func WithStrategy(strat pricing.Strategy) Option {
	return func(s *ReservationService) {
		if strat != nil {
			s.strategy = strat
		}
	}
}

func NewReservationService(cat Catalog, store storage.Store, gateway payment.Gateway, opts ...Option) *ReservationService {
	s := &ReservationService{
		catalog:  cat,
		store:    store,
		gateway:  gateway,
		ledger:   NewLedger(),
		strategy: pricing.Standard{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reserve books seats on the hold path: the order starts RESERVED with a
// lock deadline of now + 15 minutes.
func (s *ReservationService) Reserve(ctx context.Context, userID, showID string, seatIDs []string) (models.OrderSnapshot, error) {
	return s.create(ctx, userID, showID, seatIDs, true)
}

// Purchase books seats on the immediate path: the order starts PENDING
// and carries no lock deadline.
func (s *ReservationService) Purchase(ctx context.Context, userID, showID string, seatIDs []string) (models.OrderSnapshot, error) {
	return s.create(ctx, userID, showID, seatIDs, false)
}

func (s *ReservationService) create(ctx context.Context, userID, showID string, seatIDs []string, hold bool) (models.OrderSnapshot, error) {
	if userID == "" || showID == "" {
		return models.OrderSnapshot{}, errors.Validation("user and show are required")
	}
	if len(seatIDs) == 0 {
		return models.OrderSnapshot{}, errors.Validation("no seats selected")
	}
	if _, ok := s.catalog.User(userID); !ok {
		return models.OrderSnapshot{}, errors.NotFound(fmt.Sprintf("user %s not found", userID))
	}
	show, ok := s.catalog.Show(showID)
	if !ok {
		return models.OrderSnapshot{}, errors.NotFound(fmt.Sprintf("show %s not found", showID))
	}

	strat := s.activeStrategy()

	// All-or-nothing: the show validates and locks inside one critical
	// section, so overlapping reservations cannot both succeed and a
	// failed request locks nothing.
	seats, total, err := show.ReserveSeats(seatIDs, func(info models.PriceInfo, seat *models.Seat) float64 {
		return strat.Price(info, seat)
	})
	if err != nil {
		return models.OrderSnapshot{}, err
	}

	now := s.now()
	order := &models.Order{
		ID:          newOrderID(hold),
		ShowID:      showID,
		UserID:      userID,
		Seats:       seats,
		CreateTime:  now,
		Status:      models.OrderPending,
		TotalAmount: total,
	}
	if hold {
		expiry := now.Add(HoldTTL)
		order.Status = models.OrderReserved
		order.LockExpiry = &expiry
	}

	s.ledger.Put(order)
	s.persist(ctx)

	logger.WithContext(ctx).Info("order created",
		"order_id", order.ID,
		"show_id", showID,
		"user_id", userID,
		"status", order.Status,
		"seats", len(seats),
		"total", total)

	return order.Snapshot(), nil
}

func newOrderID(hold bool) string {
	if hold {
		return "RSV-" + uuid.New().String()
	}
	return "ORD-" + uuid.New().String()
}

// Pay settles a PENDING or RESERVED order. A RESERVED order past its lock
// deadline fails with an expiry error and is left untouched for the sweep
// to reclaim.
func (s *ReservationService) Pay(ctx context.Context, orderID string) error {
	order, ok := s.ledger.Get(orderID)
	if !ok {
		return errors.OrderNotFound(orderID)
	}

	// The order lock is released before persisting: persist snapshots
	// the whole ledger and would self-deadlock on this order.
	order.Lock()
	switch order.Status {
	case models.OrderPending, models.OrderReserved:
	default:
		status := order.Status
		order.Unlock()
		return errors.State(orderID, "wrong status: "+string(status))
	}
	if order.HoldExpired(s.now()) {
		order.Unlock()
		return errors.Expired(orderID)
	}

	if err := s.gateway.Authorize(ctx, order.ID, order.TotalAmount); err != nil {
		order.Unlock()
		return errors.State(orderID, "payment declined: "+err.Error())
	}

	if show, ok := s.catalog.Show(order.ShowID); ok {
		show.SellSeats(order.Seats)
	}
	order.Status = models.OrderPaid
	total := order.TotalAmount
	order.Unlock()

	s.persist(ctx)
	logger.WithContext(ctx).Info("order paid", "order_id", orderID, "total", total)
	return nil
}

// Cancel releases an order's seats. A PAID order takes the refund path to
// REFUNDED; PENDING and RESERVED orders become CANCELLED; anything
// already terminal is rejected.
func (s *ReservationService) Cancel(ctx context.Context, orderID string) error {
	order, ok := s.ledger.Get(orderID)
	if !ok {
		return errors.OrderNotFound(orderID)
	}

	order.Lock()
	switch order.Status {
	case models.OrderPaid:
		order.Status = models.OrderRefunded
	case models.OrderPending, models.OrderReserved:
		order.Status = models.OrderCancelled
	default:
		order.Unlock()
		return errors.State(orderID, "already in terminal state")
	}

	if show, ok := s.catalog.Show(order.ShowID); ok {
		show.ReleaseSeats(order.Seats)
	}
	status := order.Status
	order.Unlock()

	s.persist(ctx)
	logger.WithContext(ctx).Info("order cancelled", "order_id", orderID, "status", status)
	return nil
}

// PriceSeat quotes one seat with the active strategy, without touching
// seat or order state.
func (s *ReservationService) PriceSeat(showID, seatID string) (float64, error) {
	show, ok := s.catalog.Show(showID)
	if !ok {
		return 0, errors.NotFound(fmt.Sprintf("show %s not found", showID))
	}
	row, col, err := models.ParseSeatID(seatID)
	if err != nil {
		return 0, errors.Validation(err.Error())
	}
	seat, ok := show.SeatView(row, col)
	if !ok {
		return 0, errors.SeatNotFound(seatID)
	}
	return s.activeStrategy().Price(show.PriceInfo(), &seat), nil
}

// SetStrategy swaps the active pricing strategy for all subsequent
// calculations. Totals on existing orders are frozen and unaffected.
func (s *ReservationService) SetStrategy(id string) error {
	strat, ok := pricing.ByID(id)
	if !ok {
		return errors.Validation(fmt.Sprintf("unknown pricing strategy %q", id))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.strategy = strat
	return nil
}

// StrategyID reports the active pricing strategy.
func (s *ReservationService) StrategyID() string {
	return s.activeStrategy().ID()
}

func (s *ReservationService) activeStrategy() pricing.Strategy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.strategy
}

// Order returns a snapshot of one order.
func (s *ReservationService) Order(orderID string) (models.OrderSnapshot, error) {
	order, ok := s.ledger.Get(orderID)
	if !ok {
		return models.OrderSnapshot{}, errors.OrderNotFound(orderID)
	}
	return order.Snapshot(), nil
}

// Orders lists a user's order history, oldest first.
func (s *ReservationService) Orders(userID string) []models.OrderSnapshot {
	var out []models.OrderSnapshot
	for _, order := range s.ledger.All() {
		if order.UserID == userID {
			out = append(out, order.Snapshot())
		}
	}
	return out
}

// Restore rebuilds the ledger and seat state from the persistence
// collaborator, once at startup. Orders whose show is gone from the
// catalog are kept in the ledger but hold no seats.
func (s *ReservationService) Restore(ctx context.Context) error {
	snaps, err := s.store.LoadOrders(ctx)
	if err != nil {
		return fmt.Errorf("failed to load orders: %w", err)
	}

	for _, snap := range snaps {
		order := &models.Order{
			ID:          snap.OrderID,
			ShowID:      snap.ShowID,
			UserID:      snap.UserID,
			CreateTime:  snap.CreateTime,
			LockExpiry:  snap.LockExpiry,
			Status:      snap.Status,
			TotalAmount: snap.TotalAmount,
		}
		if show, ok := s.catalog.Show(snap.ShowID); ok {
			order.Seats = show.SeatRefs(snap.SeatIDs)
			switch snap.Status {
			case models.OrderPending, models.OrderReserved:
				show.LockSeats(order.Seats)
			case models.OrderPaid:
				show.SellSeats(order.Seats)
			}
		} else {
			logger.WithContext(ctx).Warn("restored order references unknown show",
				"order_id", snap.OrderID, "show_id", snap.ShowID)
		}
		s.ledger.Put(order)
	}

	if len(snaps) > 0 {
		logger.WithContext(ctx).Info("ledger restored", "orders", len(snaps))
	}
	return nil
}

// persist saves the full ledger snapshot. The in-memory state stays
// authoritative: failures are logged, never rolled back.
func (s *ReservationService) persist(ctx context.Context) {
	if err := s.store.SaveOrders(ctx, s.ledger.Snapshot()); err != nil {
		logger.WithContext(ctx).Error("failed to persist orders", "error", err)
	}
}
