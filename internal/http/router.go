// Package http registers the API routes and delegates to module services.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Adiraj90/Ai-trip-planner/internal/http/handlers"
	"github.com/Adiraj90/Ai-trip-planner/internal/http/middleware"
	"github.com/Adiraj90/Ai-trip-planner/internal/modules/bookmark"
	"github.com/Adiraj90/Ai-trip-planner/internal/modules/destination"
	"github.com/Adiraj90/Ai-trip-planner/internal/modules/hotel"
	"github.com/Adiraj90/Ai-trip-planner/internal/modules/itinerary"
	"github.com/Adiraj90/Ai-trip-planner/internal/modules/restaurant"
	"github.com/Adiraj90/Ai-trip-planner/internal/modules/user"
)

type RouterDeps struct {
	Trips        *itinerary.Service
	Destinations *destination.Service
	Hotels       *hotel.Service
	Restaurants  *restaurant.Service
	Users        *user.Service
	Bookmarks    *bookmark.Service
	LLMTimeout   time.Duration
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.Logging())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	userHandler := handlers.NewUserHandler(deps.Users)
	r.POST("/api/auth/register", userHandler.Register)
	r.POST("/api/auth/login", userHandler.Login)

	api := r.Group("/api", middleware.Auth())

	tripHandler := handlers.NewTripHandler(deps.Trips, deps.LLMTimeout)
	api.POST("/trips/generate", tripHandler.Generate)
	api.GET("/trips/:id", tripHandler.Get)
	api.DELETE("/trips/:id", tripHandler.Delete)
	api.GET("/users/:id/trips", tripHandler.List)
	api.GET("/users/:id/stats", tripHandler.Stats)

	destinationHandler := handlers.NewDestinationHandler(deps.Destinations, deps.LLMTimeout)
	api.GET("/destinations/guide", destinationHandler.Guide)

	hotelHandler := handlers.NewHotelHandler(deps.Hotels, deps.LLMTimeout)
	api.POST("/hotels/search", hotelHandler.Search)
	api.GET("/hotels", hotelHandler.List)

	restaurantHandler := handlers.NewRestaurantHandler(deps.Restaurants, deps.LLMTimeout)
	api.POST("/restaurants/search", restaurantHandler.Search)
	api.GET("/restaurants", restaurantHandler.List)

	api.GET("/users/:id", userHandler.Profile)
	api.PUT("/users/:id", userHandler.UpdateProfile)
	api.PUT("/users/:id/password", userHandler.ChangePassword)
	api.GET("/users/:id/preferences", userHandler.Preferences)
	api.PUT("/users/:id/preferences", userHandler.UpdatePreferences)

	bookmarkHandler := handlers.NewBookmarkHandler(deps.Bookmarks)
	api.GET("/users/:id/favorites", bookmarkHandler.Favorites)
	api.POST("/users/:id/favorites", bookmarkHandler.AddFavorite)
	api.DELETE("/users/:id/favorites", bookmarkHandler.RemoveFavorite)
	api.GET("/users/:id/bookmarks", bookmarkHandler.Bookmarks)
	api.POST("/users/:id/bookmarks", bookmarkHandler.AddBookmark)
	api.DELETE("/users/:id/bookmarks", bookmarkHandler.RemoveBookmark)

	return r
}
