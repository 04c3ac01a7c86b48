package destination

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Adiraj90/Ai-trip-planner/internal/ai"
	"github.com/Adiraj90/Ai-trip-planner/internal/geo"
)

const guideImageCount = 4

// GuideStore is the cache contract the service needs. *Store implements it.
type GuideStore interface {
	GetCached(ctx context.Context, city, country string) (*Guide, error)
	Save(ctx context.Context, g *Guide) error
}

type Service struct {
	store GuideStore
	llm   ai.TextGenerator
	geo   geo.Geocoder // nil when no maps key is configured
}

func NewService(store GuideStore, llm ai.TextGenerator, geocoder geo.Geocoder) *Service {
	return &Service{store: store, llm: llm, geo: geocoder}
}

// Guide returns the destination guide for a city, from cache when available.
// refresh forces regeneration and overwrites the cached entry.
func (s *Service) Guide(ctx context.Context, city, country string, refresh bool) (*Guide, error) {
	if !refresh {
		if cached, err := s.store.GetCached(ctx, city, country); err == nil {
			log.Info().Str("city", city).Str("country", country).Msg("destination guide served from cache")
			return cached, nil
		}
	}

	log.Info().Str("city", city).Str("country", country).Msg("generating destination guide")

	var spec guideSpec
	if err := ai.GenerateStructured(ctx, s.llm, buildGuideRequest(city, country), &spec); err != nil {
		return nil, err
	}

	g := &Guide{
		City:            city,
		Country:         country,
		Description:     spec.Description,
		PopularPlaces:   spec.PopularPlaces,
		Culture:         spec.Culture,
		LocalLanguage:   spec.LocalLanguage,
		FamousFoods:     spec.FamousFoods,
		BestTimeToVisit: spec.BestTimeToVisit,
		LocalTips:       spec.LocalTips,
		Images:          cityImages(city, country, guideImageCount),
	}

	if s.geo != nil {
		if coords, err := s.geo.Geocode(ctx, city+", "+country); err == nil {
			g.Coordinates = &coords
		}
	}
	s.locatePlaces(ctx, g)

	if err := s.store.Save(ctx, g); err != nil {
		// Serving the guide beats caching it.
		log.Error().Err(err).Str("city", city).Msg("failed to cache destination guide")
	}
	return g, nil
}

// locatePlaces geocodes each popular place; when geocoding is unavailable or
// fails the place keeps a query-based maps link so it is always clickable.
func (s *Service) locatePlaces(ctx context.Context, g *Guide) {
	for i := range g.PopularPlaces {
		p := &g.PopularPlaces[i]
		if p.Name == "" {
			continue
		}
		query := p.Name + ", " + g.City + ", " + g.Country
		if s.geo != nil {
			if coords, err := s.geo.Geocode(ctx, query); err == nil {
				p.Latitude = &coords.Lat
				p.Longitude = &coords.Lng
				p.MapsLink = geo.LinkForCoordinates(coords)
				continue
			}
		}
		p.MapsLink = geo.LinkForQuery(query)
	}
}

// cityImages returns deterministic stock-photo URLs for the city.
func cityImages(city, country string, count int) []string {
	query := strings.ReplaceAll(city+"+"+country+"+landmark", " ", "-")
	images := make([]string, 0, count)
	for i := 0; i < count; i++ {
		images = append(images, fmt.Sprintf("https://source.unsplash.com/800x600/?%s&sig=%d", query, i))
	}
	return images
}
