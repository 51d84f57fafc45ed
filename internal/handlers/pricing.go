package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cinehall/internal/errors"
	"cinehall/internal/models"
)

// GetStrategy handles GET /api/pricing/strategy.
func (h *Handlers) GetStrategy(c *gin.Context) {
	c.JSON(http.StatusOK, models.StrategyResponse{
		Strategy: h.services.Reservations.StrategyID(),
	})
}

// SetStrategy handles PUT /api/pricing/strategy. The swap affects
// subsequent quotes only; totals on existing orders stay frozen.
func (h *Handlers) SetStrategy(c *gin.Context) {
	var req models.StrategyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, errors.Validation(err.Error()))
		return
	}

	if err := h.services.Reservations.SetStrategy(req.Strategy); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.StrategyResponse{
		Strategy: h.services.Reservations.StrategyID(),
	})
}
