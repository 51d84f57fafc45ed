// Package pricing holds the swappable seat-charge strategies. Strategies
// are pure: they read a show price snapshot and a seat, and return the
// charge for that seat at that show's start time.
package pricing

import (
	"time"

	"cinehall/internal/models"
)

const (
	StandardID = "standard"
	PremiumID  = "premium"
)

type Strategy interface {
	ID() string
	Price(info models.PriceInfo, seat *models.Seat) float64
}

// ByID resolves a strategy id. Unknown ids return false.
func ByID(id string) (Strategy, bool) {
	switch id {
	case StandardID:
		return Standard{}, true
	case PremiumID:
		return Premium{}, true
	default:
		return nil, false
	}
}

// Standard starts from the show's per-type price, adds 20% on weekends and
// 15% for shows starting at 18:00 or later. The weekend factor applies
// before the evening factor; they stack multiplicatively.
type Standard struct{}

func (Standard) ID() string { return StandardID }

func (Standard) Price(info models.PriceInfo, seat *models.Seat) float64 {
	var price float64
	switch seat.Type {
	case models.SeatVIP:
		price = info.VIPPrice
	case models.SeatDiscount:
		price = info.DiscountPrice
	default:
		price = info.BasePrice
	}
	if isWeekend(info.StartTime) {
		price *= 1.20
	}
	if info.StartTime.Hour() >= 18 {
		price *= 1.15
	}
	return price
}

// Premium starts from the show's base price and doubles it for VIP seats,
// ignoring the show's own VIP price field, so Standard and Premium can
// disagree for the same seat. Weekend +30%, evening (>=18:00) +25%, prime
// time (19:00-21:59) a further +10%.
type Premium struct{}

func (Premium) ID() string { return PremiumID }

func (Premium) Price(info models.PriceInfo, seat *models.Seat) float64 {
	price := info.BasePrice
	if seat.Type == models.SeatVIP {
		price *= 2.0
	}
	if isWeekend(info.StartTime) {
		price *= 1.30
	}
	hour := info.StartTime.Hour()
	if hour >= 18 {
		price *= 1.25
	}
	if hour >= 19 && hour <= 21 {
		price *= 1.10
	}
	return price
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
