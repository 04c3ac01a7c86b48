// Package geo wraps the Google Maps client used to enrich generated places
// with coordinates and shareable map links.
package geo

import (
	"context"
	"fmt"
	"net/url"

	"googlemaps.github.io/maps"
)

// Coordinates is a geocoded point.
type Coordinates struct {
	Lat float64 `json:"latitude"`
	Lng float64 `json:"longitude"`
}

// Geocoder resolves a free-form location string to coordinates.
// Fakes implement this in tests; callers must tolerate ErrNoResult and fall
// back to query-based links.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (Coordinates, error)
}

// ErrNoResult means the geocoding backend had no match for the query.
var ErrNoResult = fmt.Errorf("geo: no result")

// Service implements Geocoder against the Google Maps Geocoding API.
type Service struct {
	client *maps.Client
}

// NewService creates a Service with the given API key.
func NewService(apiKey string) (*Service, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("geo: create maps client: %w", err)
	}
	return &Service{client: client}, nil
}

func (s *Service) Geocode(ctx context.Context, query string) (Coordinates, error) {
	results, err := s.client.Geocode(ctx, &maps.GeocodingRequest{Address: query})
	if err != nil {
		return Coordinates{}, fmt.Errorf("geo: geocode %q: %w", query, err)
	}
	if len(results) == 0 {
		return Coordinates{}, ErrNoResult
	}
	loc := results[0].Geometry.Location
	return Coordinates{Lat: loc.Lat, Lng: loc.Lng}, nil
}

// LinkForCoordinates builds a Google Maps link for an exact point.
func LinkForCoordinates(c Coordinates) string {
	return fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%f,%f", c.Lat, c.Lng)
}

// LinkForQuery builds a Google Maps search link for a free-form location.
// Used as the city-level fallback when geocoding finds nothing.
func LinkForQuery(location string) string {
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(location)
}
