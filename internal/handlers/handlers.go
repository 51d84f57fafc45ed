package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cinehall/internal/cache"
	apperrors "cinehall/internal/errors"
	"cinehall/internal/messaging"
	"cinehall/internal/models"
	"cinehall/internal/service"
)

type Handlers struct {
	services *service.Services
	cache    *cache.Client
	events   messaging.Publisher
}

// NewHandlers wires the HTTP layer. Both cache and publisher may be nil;
// the handlers degrade to direct reads and no notifications.
func NewHandlers(services *service.Services, cacheClient *cache.Client, events messaging.Publisher) *Handlers {
	return &Handlers{
		services: services,
		cache:    cacheClient,
		events:   events,
	}
}

// respondError maps the booking error taxonomy onto HTTP statuses.
// Callers see the error kind, the seat involved and a short reason,
// never internal detail.
func (h *Handlers) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	kind := apperrors.KindOf(err)
	switch kind {
	case apperrors.KindValidation:
		status = http.StatusBadRequest
	case apperrors.KindNotFound:
		status = http.StatusNotFound
	case apperrors.KindConflict:
		status = http.StatusConflict
	case apperrors.KindState:
		status = http.StatusUnprocessableEntity
	case apperrors.KindExpiry:
		status = http.StatusGone
	}

	resp := models.ErrorResponse{Error: err.Error()}
	if kind != apperrors.KindUnknown {
		resp.Kind = kind.String()
	}
	var e *apperrors.Error
	if errors.As(err, &e) {
		resp.SeatID = e.SeatID
	}
	c.JSON(status, resp)
}

// publish sends an order event; notification delivery is this layer's
// job, the reservation core never publishes.
func (h *Handlers) publish(subject string, snap models.OrderSnapshot) {
	if h.events == nil {
		return
	}
	if err := h.events.Publish(subject, models.EventForOrder(snap, time.Now())); err != nil {
		slog.Error("Failed to publish order event",
			"error", err,
			"order_id", snap.OrderID,
			"subject", subject)
	}
}

func (h *Handlers) invalidateSeats(c *gin.Context, showID string) {
	if h.cache == nil {
		return
	}
	h.cache.InvalidateSeats(c.Request.Context(), showID)
}
