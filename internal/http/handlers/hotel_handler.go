package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Adiraj90/Ai-trip-planner/internal/modules/hotel"
)

type HotelHandler struct {
	hotels     *hotel.Service
	llmTimeout time.Duration
}

func NewHotelHandler(hotels *hotel.Service, llmTimeout time.Duration) *HotelHandler {
	return &HotelHandler{hotels: hotels, llmTimeout: llmTimeout}
}

type hotelSearchReq struct {
	City       string   `json:"city"`
	Country    string   `json:"country"`
	RoomType   string   `json:"room_type"`
	Amenities  []string `json:"amenities"`
	PriceRange string   `json:"price_range"`
	NumResults int      `json:"num_results"`
}

// Search handles POST /api/hotels/search.
func (h *HotelHandler) Search(c *gin.Context) {
	var req hotelSearchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.City) == "" || strings.TrimSpace(req.Country) == "" {
		writeError(c, http.StatusBadRequest, "city and country required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.llmTimeout)
	defer cancel()

	hotels, err := h.hotels.Search(ctx, hotel.SearchQuery{
		City:       req.City,
		Country:    req.Country,
		RoomType:   req.RoomType,
		Amenities:  req.Amenities,
		PriceRange: req.PriceRange,
		NumResults: req.NumResults,
	})
	if err != nil {
		writeGenerationError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"hotels": hotels})
}

// List handles GET /api/hotels with filter query parameters.
func (h *HotelHandler) List(c *gin.Context) {
	city := strings.TrimSpace(c.Query("city"))
	country := strings.TrimSpace(c.Query("country"))
	if city == "" || country == "" {
		writeError(c, http.StatusBadRequest, "city and country query parameters required")
		return
	}

	f := hotel.Filter{
		City:     city,
		Country:  country,
		RoomType: c.Query("room_type"),
		SortBy:   c.Query("sort_by"),
	}
	f.PriceMin = queryFloat(c, "price_min")
	f.PriceMax = queryFloat(c, "price_max")
	f.RatingMin = queryFloat(c, "rating_min")

	hotels, err := h.hotels.List(c.Request.Context(), f)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"hotels": hotels})
}

func queryFloat(c *gin.Context, name string) *float64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
