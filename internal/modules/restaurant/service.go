package restaurant

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/Adiraj90/Ai-trip-planner/internal/ai"
	"github.com/Adiraj90/Ai-trip-planner/internal/geo"
)

// RestaurantStore is the persistence contract the service needs.
type RestaurantStore interface {
	InsertIfAbsent(ctx context.Context, r *Restaurant) (bool, error)
	List(ctx context.Context, f Filter) ([]Restaurant, error)
}

type Service struct {
	store RestaurantStore
	llm   ai.TextGenerator
	geo   geo.Geocoder // nil when no maps key is configured
}

func NewService(store RestaurantStore, llm ai.TextGenerator, geocoder geo.Geocoder) *Service {
	return &Service{store: store, llm: llm, geo: geocoder}
}

// Search asks the model for restaurant recommendations, enriches them with
// location data and persists the ones not yet in the catalog. The enriched
// recommendations are returned even when persistence fails.
func (s *Service) Search(ctx context.Context, q SearchQuery) ([]Restaurant, error) {
	log.Info().Str("city", q.City).Str("country", q.Country).Msg("searching restaurants")

	var list restaurantList
	if err := ai.GenerateStructured(ctx, s.llm, buildSearchRequest(q), &list); err != nil {
		return nil, err
	}

	for i := range list.Restaurants {
		r := &list.Restaurants[i]
		r.City = q.City
		r.Country = q.Country
		s.locate(ctx, r)

		if _, err := s.store.InsertIfAbsent(ctx, r); err != nil {
			log.Error().Err(err).Str("restaurant", r.Name).Msg("failed to persist restaurant")
		}
	}
	return list.Restaurants, nil
}

// locate geocodes the restaurant; on failure it keeps a city-level query link.
func (s *Service) locate(ctx context.Context, r *Restaurant) {
	if s.geo != nil {
		query := r.Name + ", " + r.Location + ", " + r.City + ", " + r.Country
		if coords, err := s.geo.Geocode(ctx, query); err == nil {
			r.Latitude = &coords.Lat
			r.Longitude = &coords.Lng
			r.MapsLink = geo.LinkForCoordinates(coords)
			return
		}
	}
	r.MapsLink = geo.LinkForQuery(r.Name + ", " + r.City + ", " + r.Country)
}

// List returns persisted restaurants matching the filter.
func (s *Service) List(ctx context.Context, f Filter) ([]Restaurant, error) {
	return s.store.List(ctx, f)
}
