package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cinehall/internal/errors"
	"cinehall/internal/metrics"
	"cinehall/internal/models"
)

// CreateOrder handles POST /api/orders: immediate purchase, the order
// starts PENDING with no hold deadline.
func (h *Handlers) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, errors.Validation(err.Error()))
		return
	}

	snap, err := h.services.Reservations.Purchase(c.Request.Context(), req.UserID, req.ShowID, req.SeatIDs)
	if err != nil {
		metrics.OrdersTotal.WithLabelValues("rejected").Inc()
		h.respondError(c, err)
		return
	}

	metrics.OrdersTotal.WithLabelValues("created").Inc()
	h.invalidateSeats(c, snap.ShowID)
	h.publish(models.EventOrderCreated, snap)
	c.JSON(http.StatusCreated, snap)
}

// ReserveOrder handles POST /api/orders/reserve: the hold path, the
// order starts RESERVED and its seats stay locked for 15 minutes.
func (h *Handlers) ReserveOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, errors.Validation(err.Error()))
		return
	}

	snap, err := h.services.Reservations.Reserve(c.Request.Context(), req.UserID, req.ShowID, req.SeatIDs)
	if err != nil {
		metrics.OrdersTotal.WithLabelValues("rejected").Inc()
		h.respondError(c, err)
		return
	}

	metrics.OrdersTotal.WithLabelValues("reserved").Inc()
	h.invalidateSeats(c, snap.ShowID)
	h.publish(models.EventOrderReserved, snap)
	c.JSON(http.StatusCreated, snap)
}

// PayOrder handles PATCH /api/orders/pay.
func (h *Handlers) PayOrder(c *gin.Context) {
	var req models.PayOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, errors.Validation(err.Error()))
		return
	}

	if err := h.services.Reservations.Pay(c.Request.Context(), req.OrderID); err != nil {
		metrics.OrdersTotal.WithLabelValues("pay_failed").Inc()
		h.respondError(c, err)
		return
	}

	snap, err := h.services.Reservations.Order(req.OrderID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	metrics.OrdersTotal.WithLabelValues("paid").Inc()
	h.invalidateSeats(c, snap.ShowID)
	h.publish(models.EventOrderPaid, snap)
	c.JSON(http.StatusOK, snap)
}

// CancelOrder handles PATCH /api/orders/cancel. A PAID order is
// refunded; a pending or held order is cancelled.
func (h *Handlers) CancelOrder(c *gin.Context) {
	var req models.CancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, errors.Validation(err.Error()))
		return
	}

	if err := h.services.Reservations.Cancel(c.Request.Context(), req.OrderID); err != nil {
		h.respondError(c, err)
		return
	}

	snap, err := h.services.Reservations.Order(req.OrderID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	subject := models.EventOrderCancelled
	outcome := "cancelled"
	if snap.Status == models.OrderRefunded {
		subject = models.EventOrderRefunded
		outcome = "refunded"
	}
	metrics.OrdersTotal.WithLabelValues(outcome).Inc()
	h.invalidateSeats(c, snap.ShowID)
	h.publish(subject, snap)
	c.JSON(http.StatusOK, snap)
}

// GetOrder handles GET /api/orders/:id.
func (h *Handlers) GetOrder(c *gin.Context) {
	snap, err := h.services.Reservations.Order(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// ListOrders handles GET /api/orders?user_id=.
func (h *Handlers) ListOrders(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		h.respondError(c, errors.Validation("user_id query parameter is required"))
		return
	}

	orders := h.services.Reservations.Orders(userID)
	if orders == nil {
		orders = []models.OrderSnapshot{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// ExpireOrders handles POST /api/orders/expire: the explicit sweep that
// reclaims every hold past its deadline. Safe to call repeatedly.
func (h *Handlers) ExpireOrders(c *gin.Context) {
	expired := h.services.Reservations.ExpireStaleReservations(c.Request.Context())

	for _, snap := range expired {
		metrics.OrdersTotal.WithLabelValues("expired").Inc()
		h.invalidateSeats(c, snap.ShowID)
		h.publish(models.EventOrderExpired, snap)
	}
	c.JSON(http.StatusOK, models.ExpireResponse{Expired: len(expired)})
}
