package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cinehall/internal/models"
)

// ListShows handles GET /api/shows.
func (h *Handlers) ListShows(c *gin.Context) {
	shows := h.services.Catalog.Shows()
	resp := make([]models.ShowResponse, 0, len(shows))
	for _, show := range shows {
		title := ""
		if movie, ok := h.services.Catalog.Movie(show.MovieID); ok {
			title = movie.Title
		}
		resp = append(resp, models.ShowResponse{
			ID:             show.ID,
			MovieTitle:     title,
			RoomID:         show.RoomID,
			StartTime:      show.StartTime.Format(time.RFC3339),
			BasePrice:      show.BasePrice(),
			AvailableSeats: show.AvailableSeats(),
			TotalSeats:     show.TotalSeats(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"shows": resp})
}
