package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Adiraj90/Ai-trip-planner/internal/modules/itinerary"
)

type TripHandler struct {
	trips      *itinerary.Service
	llmTimeout time.Duration
}

func NewTripHandler(trips *itinerary.Service, llmTimeout time.Duration) *TripHandler {
	return &TripHandler{trips: trips, llmTimeout: llmTimeout}
}

type generateTripReq struct {
	UserID         int64    `json:"user_id"`
	City           string   `json:"city"`
	State          string   `json:"state"`
	Country        string   `json:"country"`
	StartDate      string   `json:"start_date"`
	EndDate        string   `json:"end_date"`
	Budget         float64  `json:"budget"`
	Currency       string   `json:"currency"`
	TripTypes      []string `json:"trip_types"`
	FoodPreference string   `json:"food_preference"`
	NumPeople      int      `json:"num_people"`
}

// Generate handles POST /api/trips/generate.
func (h *TripHandler) Generate(c *gin.Context) {
	var req generateTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		writeError(c, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
		return
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		writeError(c, http.StatusBadRequest, "end_date must be YYYY-MM-DD")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.llmTimeout)
	defer cancel()

	result, err := h.trips.Generate(ctx, itinerary.GenerateCommand{
		UserID:         req.UserID,
		City:           req.City,
		State:          req.State,
		Country:        req.Country,
		StartDate:      start,
		EndDate:        end,
		Budget:         req.Budget,
		Currency:       req.Currency,
		TripTypes:      req.TripTypes,
		FoodPreference: req.FoodPreference,
		NumPeople:      req.NumPeople,
	})
	if err != nil {
		writeGenerationError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, result)
}

// List handles GET /api/users/:id/trips.
func (h *TripHandler) List(c *gin.Context) {
	userID, ok := paramID(c, "id")
	if !ok {
		return
	}
	trips, err := h.trips.ListTrips(c.Request.Context(), userID)
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"trips": trips})
}

// Get handles GET /api/trips/:id.
func (h *TripHandler) Get(c *gin.Context) {
	tripID, ok := paramID(c, "id")
	if !ok {
		return
	}
	trip, err := h.trips.GetTrip(c.Request.Context(), tripID)
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, trip)
}

// Delete handles DELETE /api/trips/:id?user_id=N. The user id guards against
// deleting someone else's trip.
func (h *TripHandler) Delete(c *gin.Context) {
	tripID, ok := paramID(c, "id")
	if !ok {
		return
	}
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		writeError(c, http.StatusBadRequest, "user_id query parameter required")
		return
	}
	if err := h.trips.DeleteTrip(c.Request.Context(), tripID, userID); err != nil {
		writeTripError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Stats handles GET /api/users/:id/stats.
func (h *TripHandler) Stats(c *gin.Context) {
	userID, ok := paramID(c, "id")
	if !ok {
		return
	}
	stats, err := h.trips.TripStats(c.Request.Context(), userID)
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, stats)
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		writeError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
