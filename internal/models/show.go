package models

import (
	"fmt"
	"sync"
	"time"

	"cinehall/internal/errors"
)

// PriceInfo is a consistent snapshot of the show fields pricing needs.
// Strategies work from the snapshot so they never touch the show lock.
type PriceInfo struct {
	StartTime     time.Time
	BasePrice     float64
	DiscountPrice float64
	VIPPrice      float64
}

// Show owns one seat per (row, col), materialized from the room layout at
// construction and priced by type from the show's three price fields. The
// arena is guarded by a single lock per show: reservation is validate-then-
// act inside one critical section, so two overlapping reservations can
// never both succeed.
type Show struct {
	ID        string
	MovieID   string
	RoomID    string
	StartTime time.Time
	Rows      int
	Cols      int

	mu            sync.RWMutex
	basePrice     float64
	discountPrice float64
	vipPrice      float64
	discountSet   bool
	vipSet        bool
	seats         map[string]*Seat
}

// NewShow materializes the seat arena from the room layout. Discount and
// VIP prices default to base×0.8 and base+10 until set explicitly.
func NewShow(id, movieID string, room *Room, startTime time.Time, basePrice float64) *Show {
	s := &Show{
		ID:        id,
		MovieID:   movieID,
		RoomID:    room.ID,
		StartTime: startTime,
		Rows:      room.Rows,
		Cols:      room.Cols,
		basePrice: basePrice,
		seats:     make(map[string]*Seat, room.TotalSeats()),
	}
	s.discountPrice = basePrice * 0.8
	s.vipPrice = basePrice + 10
	for row := 1; row <= room.Rows; row++ {
		for col := 1; col <= room.Cols; col++ {
			seat := &Seat{Row: row, Col: col, Type: room.TypeAt(row), Status: SeatAvailable}
			seat.Price = s.priceForLocked(seat.Type)
			s.seats[seat.ID()] = seat
		}
	}
	return s
}

func (s *Show) priceForLocked(t SeatType) float64 {
	switch t {
	case SeatVIP:
		return s.vipPrice
	case SeatDiscount:
		return s.discountPrice
	default:
		return s.basePrice
	}
}

// PriceInfo snapshots the pricing fields.
func (s *Show) PriceInfo() PriceInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.priceInfoLocked()
}

func (s *Show) priceInfoLocked() PriceInfo {
	return PriceInfo{
		StartTime:     s.StartTime,
		BasePrice:     s.basePrice,
		DiscountPrice: s.discountPrice,
		VIPPrice:      s.vipPrice,
	}
}

// ReserveSeats resolves and locks every listed seat atomically. Nothing is
// locked unless all seats parse, exist and are AVAILABLE. Each locked
// seat's price is rewritten with the quoted charge; the returned total is
// the sum of those quotes.
func (s *Show) ReserveSeats(seatIDs []string, quote func(PriceInfo, *Seat) float64) ([]*Seat, float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	selected := make([]*Seat, 0, len(seatIDs))
	seen := make(map[string]struct{}, len(seatIDs))
	for _, id := range seatIDs {
		row, col, err := ParseSeatID(id)
		if err != nil {
			return nil, 0, errors.Validation(err.Error())
		}
		key := fmt.Sprintf("%d-%d", row, col)
		if _, dup := seen[key]; dup {
			return nil, 0, errors.Validation(fmt.Sprintf("duplicate seat id %q", id))
		}
		seen[key] = struct{}{}
		seat, ok := s.seats[key]
		if !ok {
			return nil, 0, errors.SeatNotFound(id)
		}
		if !seat.IsAvailable() {
			return nil, 0, errors.SeatTaken(id)
		}
		selected = append(selected, seat)
	}

	info := s.priceInfoLocked()
	var total float64
	for _, seat := range selected {
		seat.Price = quote(info, seat)
		seat.Lock()
		total += seat.Price
	}
	return selected, total, nil
}

// SeatRefs resolves arena references for known seat ids, skipping ids the
// show does not have. Used when rebuilding orders from a persisted
// snapshot.
func (s *Show) SeatRefs(seatIDs []string) []*Seat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	refs := make([]*Seat, 0, len(seatIDs))
	for _, id := range seatIDs {
		if seat, ok := s.seats[id]; ok {
			refs = append(refs, seat)
		}
	}
	return refs
}

// LockSeats marks the given seats LOCKED.
func (s *Show) LockSeats(seats []*Seat) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, seat := range seats {
		seat.Lock()
	}
}

// ReleaseSeats returns the given seats to AVAILABLE.
func (s *Show) ReleaseSeats(seats []*Seat) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, seat := range seats {
		seat.Unlock()
	}
}

// SellSeats marks the given seats SOLD.
func (s *Show) SellSeats(seats []*Seat) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, seat := range seats {
		seat.Sell()
	}
}

// SetBasePrice rewrites the base price and every seat that follows it,
// including seats already SOLD. Already-created orders keep their frozen
// totals. Whether rewriting SOLD seats is intended (display consistency)
// or a latent quirk is unconfirmed; the behavior is preserved as observed.
func (s *Show) SetBasePrice(p float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.basePrice = p
	if !s.discountSet {
		s.discountPrice = p * 0.8
	}
	if !s.vipSet {
		s.vipPrice = p + 10
	}
	s.rewriteSeatPricesLocked()
}

// SetDiscountPrice pins the discount price and rewrites DISCOUNT seats.
func (s *Show) SetDiscountPrice(p float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.discountPrice = p
	s.discountSet = true
	s.rewriteSeatPricesLocked()
}

// SetVIPPrice pins the VIP price and rewrites VIP seats.
func (s *Show) SetVIPPrice(p float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vipPrice = p
	s.vipSet = true
	s.rewriteSeatPricesLocked()
}

func (s *Show) rewriteSeatPricesLocked() {
	for _, seat := range s.seats {
		seat.Price = s.priceForLocked(seat.Type)
	}
}

// SeatView returns a copy of one seat for read-only use.
func (s *Show) SeatView(row, col int) (Seat, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seat, ok := s.seats[fmt.Sprintf("%d-%d", row, col)]
	if !ok {
		return Seat{}, false
	}
	return *seat, true
}

// SeatViews returns copies of all seats in row-major order.
func (s *Show) SeatViews() []Seat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Seat, 0, len(s.seats))
	for row := 1; row <= s.Rows; row++ {
		for col := 1; col <= s.Cols; col++ {
			if seat, ok := s.seats[fmt.Sprintf("%d-%d", row, col)]; ok {
				out = append(out, *seat)
			}
		}
	}
	return out
}

// AvailableSeats counts seats still AVAILABLE.
func (s *Show) AvailableSeats() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, seat := range s.seats {
		if seat.IsAvailable() {
			n++
		}
	}
	return n
}

// TotalSeats is the arena size, rows × cols.
func (s *Show) TotalSeats() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.seats)
}

// BasePrice returns the current base price.
func (s *Show) BasePrice() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.basePrice
}
