package models

// Room is a screening room template. Shows copy its layout at creation;
// the room itself carries no seat state.
type Room struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Rows         int    `json:"rows"`
	Cols         int    `json:"cols"`
	VIPRows      int    `json:"vip_rows"`
	DiscountRows int    `json:"discount_rows"`
}

// NewRoom builds a room with the default layout: the first 3 rows are VIP,
// the rest regular.
func NewRoom(id, name string, rows, cols int) *Room {
	return &Room{ID: id, Name: name, Rows: rows, Cols: cols, VIPRows: 3}
}

// TypeAt returns the seat type for a 1-based row. VIP rows come first,
// discount rows (if any) last.
func (r *Room) TypeAt(row int) SeatType {
	switch {
	case row <= r.VIPRows:
		return SeatVIP
	case r.DiscountRows > 0 && row > r.Rows-r.DiscountRows:
		return SeatDiscount
	default:
		return SeatRegular
	}
}

// TotalSeats is rows × cols.
func (r *Room) TotalSeats() int {
	return r.Rows * r.Cols
}
