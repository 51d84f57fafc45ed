package models

// Request/response models for the HTTP layer.

// CreateOrderRequest covers both booking paths: immediate purchase and
// 15-minute hold.
type CreateOrderRequest struct {
	UserID  string   `json:"user_id" binding:"required"`
	ShowID  string   `json:"show_id" binding:"required"`
	SeatIDs []string `json:"seat_ids" binding:"required"`
}

// PayOrderRequest - PATCH /api/orders/pay
type PayOrderRequest struct {
	OrderID string `json:"order_id" binding:"required"`
}

// CancelOrderRequest - PATCH /api/orders/cancel
type CancelOrderRequest struct {
	OrderID string `json:"order_id" binding:"required"`
}

// ExpireResponse reports how many stale reservations a sweep reclaimed.
type ExpireResponse struct {
	Expired int `json:"expired"`
}

// SeatResponse is one seat in a show listing.
type SeatResponse struct {
	ID     string     `json:"id"`
	Row    int        `json:"row"`
	Col    int        `json:"col"`
	Type   SeatType   `json:"type"`
	Status SeatStatus `json:"status"`
	Price  float64    `json:"price"`
}

// ListSeatsResponse - GET /api/seats
type ListSeatsResponse struct {
	ShowID string         `json:"show_id"`
	Seats  []SeatResponse `json:"seats"`
}

// PriceResponse - GET /api/seats/price
type PriceResponse struct {
	ShowID   string  `json:"show_id"`
	SeatID   string  `json:"seat_id"`
	Strategy string  `json:"strategy"`
	Price    float64 `json:"price"`
}

// StrategyRequest - PUT /api/pricing/strategy
type StrategyRequest struct {
	Strategy string `json:"strategy" binding:"required"`
}

// StrategyResponse - GET /api/pricing/strategy
type StrategyResponse struct {
	Strategy string `json:"strategy"`
}

// ShowResponse is one show in a listing, with availability counts.
type ShowResponse struct {
	ID             string  `json:"id"`
	MovieTitle     string  `json:"movie_title"`
	RoomID         string  `json:"room_id"`
	StartTime      string  `json:"start_time"`
	BasePrice      float64 `json:"base_price"`
	AvailableSeats int     `json:"available_seats"`
	TotalSeats     int     `json:"total_seats"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error  string `json:"error"`
	Kind   string `json:"kind,omitempty"`
	SeatID string `json:"seat_id,omitempty"`
}
