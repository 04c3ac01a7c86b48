package hotel

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/Adiraj90/Ai-trip-planner/internal/ai"
	"github.com/Adiraj90/Ai-trip-planner/internal/geo"
)

// HotelStore is the persistence contract the service needs.
type HotelStore interface {
	InsertIfAbsent(ctx context.Context, h *Hotel) (bool, error)
	List(ctx context.Context, f Filter) ([]Hotel, error)
}

type Service struct {
	store HotelStore
	llm   ai.TextGenerator
	geo   geo.Geocoder // nil when no maps key is configured
}

func NewService(store HotelStore, llm ai.TextGenerator, geocoder geo.Geocoder) *Service {
	return &Service{store: store, llm: llm, geo: geocoder}
}

// Search asks the model for hotel recommendations, enriches them with
// location data and persists the ones not yet in the catalog. The enriched
// recommendations are returned even when persistence fails.
func (s *Service) Search(ctx context.Context, q SearchQuery) ([]Hotel, error) {
	log.Info().Str("city", q.City).Str("country", q.Country).Msg("searching hotels")

	var list hotelList
	if err := ai.GenerateStructured(ctx, s.llm, buildSearchRequest(q), &list); err != nil {
		return nil, err
	}

	for i := range list.Hotels {
		h := &list.Hotels[i]
		h.City = q.City
		h.Country = q.Country
		s.locate(ctx, h)

		if _, err := s.store.InsertIfAbsent(ctx, h); err != nil {
			log.Error().Err(err).Str("hotel", h.Name).Msg("failed to persist hotel")
		}
	}
	return list.Hotels, nil
}

// locate geocodes the hotel; on failure it keeps a city-level query link.
func (s *Service) locate(ctx context.Context, h *Hotel) {
	if s.geo != nil {
		query := h.Name + ", " + h.Location + ", " + h.City + ", " + h.Country
		if coords, err := s.geo.Geocode(ctx, query); err == nil {
			h.Latitude = &coords.Lat
			h.Longitude = &coords.Lng
			h.MapsLink = geo.LinkForCoordinates(coords)
			return
		}
	}
	h.MapsLink = geo.LinkForQuery(h.Name + ", " + h.City + ", " + h.Country)
}

// List returns persisted hotels matching the filter.
func (s *Service) List(ctx context.Context, f Filter) ([]Hotel, error) {
	return s.store.List(ctx, f)
}
