package models

import (
	"fmt"
	"strconv"
	"strings"
)

// SeatType tags a seat position; pricing switches on the tag.
type SeatType string

const (
	SeatRegular  SeatType = "REGULAR"
	SeatVIP      SeatType = "VIP"
	SeatDiscount SeatType = "DISCOUNT"
)

// SeatStatus is the seat lifecycle within one show.
type SeatStatus string

const (
	SeatAvailable SeatStatus = "AVAILABLE"
	SeatLocked    SeatStatus = "LOCKED"
	SeatSold      SeatStatus = "SOLD"
)

// Seat is one bookable position in a show. Identity is (row, col) only;
// price and status do not participate in equality. Seats are owned by the
// show that materialized them and must only be mutated while holding that
// show's lock; Lock/Unlock/Sell perform no validation of their own.
type Seat struct {
	Row    int        `json:"row"`
	Col    int        `json:"col"`
	Type   SeatType   `json:"type"`
	Status SeatStatus `json:"status"`
	Price  float64    `json:"price"`
}

// ID returns the wire form of the seat identity, "<row>-<col>", 1-based.
func (s *Seat) ID() string {
	return fmt.Sprintf("%d-%d", s.Row, s.Col)
}

func (s *Seat) IsAvailable() bool {
	return s.Status == SeatAvailable
}

func (s *Seat) IsLocked() bool {
	return s.Status == SeatLocked
}

func (s *Seat) Lock() {
	s.Status = SeatLocked
}

func (s *Seat) Unlock() {
	s.Status = SeatAvailable
}

func (s *Seat) Sell() {
	s.Status = SeatSold
}

// ParseSeatID parses the "<row>-<col>" wire format. Malformed tokens are a
// validation failure; whether the position exists is for the show to decide.
func ParseSeatID(id string) (row, col int, err error) {
	parts := strings.SplitN(id, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed seat id %q", id)
	}
	row, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed seat id %q", id)
	}
	col, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed seat id %q", id)
	}
	return row, col, nil
}
