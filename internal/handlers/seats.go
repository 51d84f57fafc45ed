package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cinehall/internal/errors"
	"cinehall/internal/models"
)

// ListSeats handles GET /api/seats?show_id=. Listings go through the
// read-through cache when one is configured; mutating handlers
// invalidate the entry, so a stale read lasts at most the cache TTL.
func (h *Handlers) ListSeats(c *gin.Context) {
	showID := c.Query("show_id")
	if showID == "" {
		h.respondError(c, errors.Validation("show_id query parameter is required"))
		return
	}

	if h.cache != nil {
		if raw, err := h.cache.GetSeatsRaw(c.Request.Context(), showID); err == nil {
			c.Data(http.StatusOK, "application/json", raw)
			return
		}
	}

	show, ok := h.services.Catalog.Show(showID)
	if !ok {
		h.respondError(c, errors.NotFound("show "+showID+" not found"))
		return
	}

	seats := show.SeatViews()
	resp := models.ListSeatsResponse{
		ShowID: showID,
		Seats:  make([]models.SeatResponse, 0, len(seats)),
	}
	for _, seat := range seats {
		resp.Seats = append(resp.Seats, models.SeatResponse{
			ID:     seat.ID(),
			Row:    seat.Row,
			Col:    seat.Col,
			Type:   seat.Type,
			Status: seat.Status,
			Price:  seat.Price,
		})
	}

	if h.cache != nil {
		h.cache.SetSeats(c.Request.Context(), showID, resp)
	}
	c.JSON(http.StatusOK, resp)
}

// PriceSeat handles GET /api/seats/price?show_id=&seat_id=: a quote
// under the active strategy, without touching seat state.
func (h *Handlers) PriceSeat(c *gin.Context) {
	showID := c.Query("show_id")
	seatID := c.Query("seat_id")
	if showID == "" || seatID == "" {
		h.respondError(c, errors.Validation("show_id and seat_id query parameters are required"))
		return
	}

	price, err := h.services.Reservations.PriceSeat(showID, seatID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PriceResponse{
		ShowID:   showID,
		SeatID:   seatID,
		Strategy: h.services.Reservations.StrategyID(),
		Price:    price,
	})
}
