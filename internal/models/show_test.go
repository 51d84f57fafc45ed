package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinehall/internal/errors"
)

func testShow() *Show {
	room := NewRoom("ROOM-T", "Test Room", 5, 6)
	start := time.Date(2026, 3, 4, 14, 30, 0, 0, time.UTC)
	return NewShow("SHOW-T", "MOV-T", room, start, 50)
}

func seatPrice(info PriceInfo, seat *Seat) float64 {
	switch seat.Type {
	case SeatVIP:
		return info.VIPPrice
	case SeatDiscount:
		return info.DiscountPrice
	default:
		return info.BasePrice
	}
}

func TestNewShowMaterializesArena(t *testing.T) {
	show := testShow()

	assert.Equal(t, 30, show.TotalSeats())
	assert.Equal(t, 30, show.AvailableSeats())

	// First 3 rows VIP, the rest regular.
	vip, ok := show.SeatView(1, 1)
	require.True(t, ok)
	assert.Equal(t, SeatVIP, vip.Type)
	assert.InDelta(t, 60.0, vip.Price, 0.001)

	regular, ok := show.SeatView(4, 6)
	require.True(t, ok)
	assert.Equal(t, SeatRegular, regular.Type)
	assert.InDelta(t, 50.0, regular.Price, 0.001)

	_, ok = show.SeatView(6, 1)
	assert.False(t, ok)
}

func TestDiscountRowsComeLast(t *testing.T) {
	room := NewRoom("ROOM-D", "Discount Room", 5, 4)
	room.DiscountRows = 2
	show := NewShow("SHOW-D", "MOV-T", room, time.Now(), 50)

	seat, ok := show.SeatView(5, 1)
	require.True(t, ok)
	assert.Equal(t, SeatDiscount, seat.Type)
	assert.InDelta(t, 40.0, seat.Price, 0.001)
}

func TestReserveSeatsLocksAndPrices(t *testing.T) {
	show := testShow()

	seats, total, err := show.ReserveSeats([]string{"1-1", "4-2"}, seatPrice)
	require.NoError(t, err)
	require.Len(t, seats, 2)
	assert.InDelta(t, 110.0, total, 0.001)

	for _, seat := range seats {
		assert.Equal(t, SeatLocked, seat.Status)
	}
	assert.Equal(t, 28, show.AvailableSeats())
}

func TestReserveSeatsIsAllOrNothing(t *testing.T) {
	show := testShow()

	// One id out of bounds: nothing may be locked.
	_, _, err := show.ReserveSeats([]string{"1-1", "9-9"}, seatPrice)
	require.Error(t, err)
	assert.Equal(t, errors.KindNotFound, errors.KindOf(err))
	assert.Equal(t, 30, show.AvailableSeats())

	// Malformed id.
	_, _, err = show.ReserveSeats([]string{"1-1", "A7"}, seatPrice)
	require.Error(t, err)
	assert.Equal(t, errors.KindValidation, errors.KindOf(err))
	assert.Equal(t, 30, show.AvailableSeats())

	// Duplicate id within one request.
	_, _, err = show.ReserveSeats([]string{"1-1", "1-1"}, seatPrice)
	require.Error(t, err)
	assert.Equal(t, errors.KindValidation, errors.KindOf(err))
	assert.Equal(t, 30, show.AvailableSeats())
}

func TestReserveSeatsRejectsTakenSeat(t *testing.T) {
	show := testShow()

	_, _, err := show.ReserveSeats([]string{"2-2"}, seatPrice)
	require.NoError(t, err)

	_, _, err = show.ReserveSeats([]string{"2-1", "2-2"}, seatPrice)
	require.Error(t, err)
	assert.Equal(t, errors.KindConflict, errors.KindOf(err))

	// The available seat in the failed request stays untouched.
	seat, _ := show.SeatView(2, 1)
	assert.Equal(t, SeatAvailable, seat.Status)
}

func TestSetBasePriceRewritesSeats(t *testing.T) {
	show := testShow()

	seats, _, err := show.ReserveSeats([]string{"4-1"}, seatPrice)
	require.NoError(t, err)
	show.SellSeats(seats)

	show.SetBasePrice(80)

	// Derived prices follow until pinned explicitly.
	regular, _ := show.SeatView(4, 2)
	assert.InDelta(t, 80.0, regular.Price, 0.001)
	vip, _ := show.SeatView(1, 1)
	assert.InDelta(t, 90.0, vip.Price, 0.001)

	// SOLD seats are rewritten too.
	sold, _ := show.SeatView(4, 1)
	assert.Equal(t, SeatSold, sold.Status)
	assert.InDelta(t, 80.0, sold.Price, 0.001)
}

func TestPinnedVIPPriceStopsFollowingBase(t *testing.T) {
	show := testShow()

	show.SetVIPPrice(95)
	show.SetBasePrice(70)

	vip, _ := show.SeatView(1, 1)
	assert.InDelta(t, 95.0, vip.Price, 0.001)
	regular, _ := show.SeatView(4, 1)
	assert.InDelta(t, 70.0, regular.Price, 0.001)
}

func TestParseSeatID(t *testing.T) {
	row, col, err := ParseSeatID("3-12")
	require.NoError(t, err)
	assert.Equal(t, 3, row)
	assert.Equal(t, 12, col)

	for _, bad := range []string{"", "3", "a-b", "3-b", "a-2"} {
		_, _, err := ParseSeatID(bad)
		assert.Error(t, err, "id %q", bad)
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	assert.False(t, OrderPending.Terminal())
	assert.False(t, OrderReserved.Terminal())
	assert.False(t, OrderPaid.Terminal())
	assert.True(t, OrderCancelled.Terminal())
	assert.True(t, OrderRefunded.Terminal())
	assert.True(t, OrderExpired.Terminal())
}

func TestHoldExpired(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	deadline := now.Add(15 * time.Minute)

	order := &Order{Status: OrderReserved, LockExpiry: &deadline}
	assert.False(t, order.HoldExpired(now))
	assert.False(t, order.HoldExpired(deadline))
	assert.True(t, order.HoldExpired(deadline.Add(time.Second)))

	// Only RESERVED holds expire.
	paid := &Order{Status: OrderPaid, LockExpiry: &deadline}
	assert.False(t, paid.HoldExpired(deadline.Add(time.Hour)))
	pending := &Order{Status: OrderPending}
	assert.False(t, pending.HoldExpired(deadline.Add(time.Hour)))
}
