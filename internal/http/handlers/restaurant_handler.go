package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Adiraj90/Ai-trip-planner/internal/modules/restaurant"
)

type RestaurantHandler struct {
	restaurants *restaurant.Service
	llmTimeout  time.Duration
}

func NewRestaurantHandler(restaurants *restaurant.Service, llmTimeout time.Duration) *RestaurantHandler {
	return &RestaurantHandler{restaurants: restaurants, llmTimeout: llmTimeout}
}

type restaurantSearchReq struct {
	City        string `json:"city"`
	Country     string `json:"country"`
	FoodType    string `json:"food_type"`
	CuisineType string `json:"cuisine_type"`
	PriceRange  string `json:"price_range"`
	NumResults  int    `json:"num_results"`
}

// Search handles POST /api/restaurants/search.
func (h *RestaurantHandler) Search(c *gin.Context) {
	var req restaurantSearchReq
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

	restaurants, err := h.restaurants.Search(ctx, restaurant.SearchQuery{
		City:        req.City,
		Country:     req.Country,
		FoodType:    req.FoodType,
		CuisineType: req.CuisineType,
		PriceRange:  req.PriceRange,
		NumResults:  req.NumResults,
	})
	if err != nil {
		writeGenerationError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"restaurants": restaurants})
}

// List handles GET /api/restaurants with filter query parameters.
func (h *RestaurantHandler) List(c *gin.Context) {
	city := strings.TrimSpace(c.Query("city"))
	country := strings.TrimSpace(c.Query("country"))
	if city == "" || country == "" {
		writeError(c, http.StatusBadRequest, "city and country query parameters required")
		return
	}

	f := restaurant.Filter{
		City:        city,
		Country:     country,
		FoodType:    c.Query("food_type"),
		CuisineType: c.Query("cuisine_type"),
		PriceRange:  c.Query("price_range"),
		SortBy:      c.Query("sort_by"),
	}
	f.RatingMin = queryFloat(c, "rating_min")

	restaurants, err := h.restaurants.List(c.Request.Context(), f)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"restaurants": restaurants})
}
