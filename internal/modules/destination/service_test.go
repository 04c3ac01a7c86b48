package destination

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Adiraj90/Ai-trip-planner/internal/ai"
	"github.com/Adiraj90/Ai-trip-planner/internal/geo"
)

type fakeGuideStore struct {
	cached *Guide
	saved  []*Guide
}

func (f *fakeGuideStore) GetCached(_ context.Context, city, country string) (*Guide, error) {
	if f.cached != nil && f.cached.City == city && f.cached.Country == country {
		return f.cached, nil
	}
	return nil, ErrNotCached
}

func (f *fakeGuideStore) Save(_ context.Context, g *Guide) error {
	f.saved = append(f.saved, g)
	return nil
}

type stubGenerator struct {
	text  string
	err   error
	calls int
}

func (s *stubGenerator) GenerateText(_ context.Context, _ ai.GenerationRequest) (string, error) {
	s.calls++
	return s.text, s.err
}

type stubGeocoder struct {
	coords map[string]geo.Coordinates
}

func (s *stubGeocoder) Geocode(_ context.Context, query string) (geo.Coordinates, error) {
	if c, ok := s.coords[query]; ok {
		return c, nil
	}
	return geo.Coordinates{}, geo.ErrNoResult
}

const guideResponse = "```json\n" + `{
  "description": "A coastal capital known for its light.",
  "popular_places": [
    {"name": "Belem Tower", "description": "Riverside fortress", "category": "Monument"},
    {"name": "Alfama", "description": "Oldest district", "category": "Neighborhood"}
  ],
  "culture": "Fado music and cafe culture.",
  "local_language": "Portuguese",
  "famous_foods": [
    {"name": "Pastel de nata", "description": "Custard tart"}
  ],
  "best_time_to_visit": "March to May",
  "local_tips": "Wear comfortable shoes for the hills.",
}` + "\n```"

func TestGuideGeneratesAndCaches(t *testing.T) {
	store := &fakeGuideStore{}
	gen := &stubGenerator{text: guideResponse}
	geocoder := &stubGeocoder{coords: map[string]geo.Coordinates{
		"Lisbon, Portugal":              {Lat: 38.72, Lng: -9.14},
		"Belem Tower, Lisbon, Portugal": {Lat: 38.69, Lng: -9.21},
	}}
	svc := NewService(store, gen, geocoder)

	g, err := svc.Guide(context.Background(), "Lisbon", "Portugal", false)
	if err != nil {
		t.Fatalf("Guide() error = %v", err)
	}

	if g.Description == "" || g.LocalLanguage != "Portuguese" {
		t.Fatalf("guide content missing: %+v", g)
	}
	if len(g.Images) != guideImageCount {
		t.Fatalf("images = %d, want %d", len(g.Images), guideImageCount)
	}
	if g.Coordinates == nil || g.Coordinates.Lat != 38.72 {
		t.Fatalf("city coordinates = %+v", g.Coordinates)
	}

	// Belem Tower geocodes; Alfama falls back to a query link.
	tower, alfama := g.PopularPlaces[0], g.PopularPlaces[1]
	if tower.Latitude == nil || *tower.Latitude != 38.69 {
		t.Fatalf("geocoded place latitude = %v", tower.Latitude)
	}
	if !strings.Contains(tower.MapsLink, "query=38.69") {
		t.Fatalf("geocoded place link = %q", tower.MapsLink)
	}
	if alfama.Latitude != nil || !strings.Contains(alfama.MapsLink, "Alfama") {
		t.Fatalf("fallback place = %+v", alfama)
	}

	if len(store.saved) != 1 {
		t.Fatalf("saved guides = %d, want 1", len(store.saved))
	}
}

func TestGuideServedFromCache(t *testing.T) {
	store := &fakeGuideStore{cached: &Guide{City: "Lisbon", Country: "Portugal", Description: "cached"}}
	gen := &stubGenerator{text: guideResponse}
	svc := NewService(store, gen, nil)

	g, err := svc.Guide(context.Background(), "Lisbon", "Portugal", false)
	if err != nil {
		t.Fatalf("Guide() error = %v", err)
	}
	if g.Description != "cached" {
		t.Fatalf("expected cached guide, got %q", g.Description)
	}
	if gen.calls != 0 {
		t.Fatal("cache hit must not call the provider")
	}
}

func TestGuideRefreshBypassesCache(t *testing.T) {
	store := &fakeGuideStore{cached: &Guide{City: "Lisbon", Country: "Portugal", Description: "cached"}}
	gen := &stubGenerator{text: guideResponse}
	svc := NewService(store, gen, nil)

	g, err := svc.Guide(context.Background(), "Lisbon", "Portugal", true)
	if err != nil {
		t.Fatalf("Guide() error = %v", err)
	}
	if g.Description == "cached" {
		t.Fatal("refresh must regenerate the guide")
	}
	if gen.calls != 1 {
		t.Fatalf("provider calls = %d, want 1", gen.calls)
	}
	if len(store.saved) != 1 {
		t.Fatal("refreshed guide must be re-cached")
	}
}

func TestGuideWithoutGeocoderUsesQueryLinks(t *testing.T) {
	store := &fakeGuideStore{}
	gen := &stubGenerator{text: guideResponse}
	svc := NewService(store, gen, nil)

	g, err := svc.Guide(context.Background(), "Lisbon", "Portugal", false)
	if err != nil {
		t.Fatalf("Guide() error = %v", err)
	}
	if g.Coordinates != nil {
		t.Fatal("no geocoder, no city coordinates")
	}
	for _, p := range g.PopularPlaces {
		if p.MapsLink == "" || p.Latitude != nil {
			t.Fatalf("place without geocoder = %+v", p)
		}
	}
}

func TestGuideParseFailureSurfaces(t *testing.T) {
	store := &fakeGuideStore{}
	gen := &stubGenerator{text: "Sorry, I can't produce JSON today."}
	svc := NewService(store, gen, nil)

	_, err := svc.Guide(context.Background(), "Lisbon", "Portugal", false)
	var pe *ai.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ai.ParseError, got %v", err)
	}
	if len(store.saved) != 0 {
		t.Fatal("nothing may be cached after a parse failure")
	}
}
