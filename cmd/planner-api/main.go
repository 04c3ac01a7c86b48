// Entry point: loads config, wires module services and starts the API server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Adiraj90/Ai-trip-planner/internal/ai"
	"github.com/Adiraj90/Ai-trip-planner/internal/config"
	"github.com/Adiraj90/Ai-trip-planner/internal/geo"
	httptransport "github.com/Adiraj90/Ai-trip-planner/internal/http"
	"github.com/Adiraj90/Ai-trip-planner/internal/infra"
	"github.com/Adiraj90/Ai-trip-planner/internal/modules/bookmark"
	"github.com/Adiraj90/Ai-trip-planner/internal/modules/destination"
	"github.com/Adiraj90/Ai-trip-planner/internal/modules/hotel"
	"github.com/Adiraj90/Ai-trip-planner/internal/modules/itinerary"
	"github.com/Adiraj90/Ai-trip-planner/internal/modules/restaurant"
	"github.com/Adiraj90/Ai-trip-planner/internal/modules/user"
)

func main() {
	// Local development convenience; the file is absent in production.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := infra.NewDB(ctx, cfg.DBDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("connect postgres")
	}
	defer db.Close()

	redisClient := infra.NewRedis(cfg.RedisAddr)
	defer redisClient.Close()

	provider, err := ai.NewGeminiProvider(ctx, cfg.GeminiKey)
	if err != nil {
		log.Fatal().Err(err).Msg("init gemini provider")
	}
	defer provider.Close()

	var geocoder geo.Geocoder
	if cfg.MapsKey != "" {
		geoSvc, err := geo.NewService(cfg.MapsKey)
		if err != nil {
			log.Fatal().Err(err).Msg("init maps client")
		}
		geocoder = geoSvc
	} else {
		log.Warn().Msg("GOOGLE_MAPS_API_KEY not set; places will use query-based map links only")
	}

	tripSvc := itinerary.NewService(itinerary.NewStore(db), provider)
	destSvc := destination.NewService(destination.NewStore(db, redisClient, cfg.DestTTL), provider, geocoder)
	hotelSvc := hotel.NewService(hotel.NewStore(db), provider, geocoder)
	restaurantSvc := restaurant.NewService(restaurant.NewStore(db), provider, geocoder)
	userSvc := user.NewService(user.NewStore(db))
	bookmarkSvc := bookmark.NewService(bookmark.NewStore(db))

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Trips:        tripSvc,
		Destinations: destSvc,
		Hotels:       hotelSvc,
		Restaurants:  restaurantSvc,
		Users:        userSvc,
		Bookmarks:    bookmarkSvc,
		LLMTimeout:   cfg.LLMTimeout,
	})

	server := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	log.Info().Str("addr", cfg.HTTPAddr).Str("env", cfg.Environment).Msg("planner api listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("serve")
	}
}
