package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Adiraj90/Ai-trip-planner/internal/modules/destination"
)

type DestinationHandler struct {
	destinations *destination.Service
	llmTimeout   time.Duration
}

func NewDestinationHandler(destinations *destination.Service, llmTimeout time.Duration) *DestinationHandler {
	return &DestinationHandler{destinations: destinations, llmTimeout: llmTimeout}
}

// Guide handles GET /api/destinations/guide?city=&country=&refresh=.
func (h *DestinationHandler) Guide(c *gin.Context) {
	city := strings.TrimSpace(c.Query("city"))
	country := strings.TrimSpace(c.Query("country"))
	if city == "" || country == "" {
		writeError(c, http.StatusBadRequest, "city and country query parameters required")
		return
	}
	refresh := c.Query("refresh") == "true"

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.llmTimeout)
	defer cancel()

	guide, err := h.destinations.Guide(ctx, city, country, refresh)
	if err != nil {
		writeGenerationError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, guide)
}
