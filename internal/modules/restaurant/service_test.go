package restaurant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Adiraj90/Ai-trip-planner/internal/ai"
	"github.com/Adiraj90/Ai-trip-planner/internal/geo"
)

type fakeRestaurantStore struct {
	restaurants []Restaurant
}

func (f *fakeRestaurantStore) InsertIfAbsent(_ context.Context, r *Restaurant) (bool, error) {
	for _, existing := range f.restaurants {
		if existing.Name == r.Name && existing.City == r.City && existing.Country == r.Country {
			return false, nil
		}
	}
	f.restaurants = append(f.restaurants, *r)
	return true, nil
}

func (f *fakeRestaurantStore) List(_ context.Context, _ Filter) ([]Restaurant, error) {
	return f.restaurants, nil
}

type stubGenerator struct {
	text string
	err  error
}

func (s *stubGenerator) GenerateText(_ context.Context, _ ai.GenerationRequest) (string, error) {
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

const restaurantResponse = "```json\n" + `{
  "restaurants": [
    {
      "name": "Casa Lisboa",
      "description": "Traditional fare in a tiled dining room.",
      "location": "Chiado",
      "cuisine_type": "Portuguese",
      "food_type": "Mixed",
      "price_range": "Medium",
      "rating": 4.6,
      "popular_dishes": ["Bacalhau a bras", "Arroz de marisco", "Pastel de nata"],
      "opening_hours": "12:00 PM",
      "closing_hours": "11:00 PM"
    },
    {
      "name": "Verde Folha",
      "description": "Plant-based plates near the park.",
      "location": "Principe Real",
      "cuisine_type": "Vegan",
      "food_type": "Vegan",
      "price_range": "Budget",
      "rating": 4.3,
      "popular_dishes": ["Seitan bowl", "Jackfruit tacos"],
      "opening_hours": "10:00 AM",
      "closing_hours": "09:00 PM",
    }
  ]
}` + "\n```"

func TestSearchEnrichesAndPersists(t *testing.T) {
	store := &fakeRestaurantStore{}
	gen := &stubGenerator{text: restaurantResponse}
	geocoder := &stubGeocoder{coords: map[string]geo.Coordinates{
		"Casa Lisboa, Chiado, Lisbon, Portugal": {Lat: 38.71, Lng: -9.14},
	}}
	svc := NewService(store, gen, geocoder)

	restaurants, err := svc.Search(context.Background(), SearchQuery{
		City: "Lisbon", Country: "Portugal", FoodType: "Mixed", PriceRange: "Medium",
	})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(restaurants) != 2 {
		t.Fatalf("restaurants = %d, want 2", len(restaurants))
	}

	casa, verde := restaurants[0], restaurants[1]
	if casa.Latitude == nil || *casa.Latitude != 38.71 {
		t.Fatalf("geocoded restaurant latitude = %v", casa.Latitude)
	}
	if verde.Latitude != nil || !strings.Contains(verde.MapsLink, "Verde+Folha") {
		t.Fatalf("fallback restaurant = %+v", verde)
	}
	if casa.OpeningHours != "12:00 PM" || casa.ClosingHours != "11:00 PM" {
		t.Fatalf("hours = %q - %q", casa.OpeningHours, casa.ClosingHours)
	}
	if len(store.restaurants) != 2 {
		t.Fatalf("persisted restaurants = %d, want 2", len(store.restaurants))
	}
}

func TestSearchSkipsAlreadyKnownRestaurants(t *testing.T) {
	store := &fakeRestaurantStore{restaurants: []Restaurant{
		{Name: "Casa Lisboa", City: "Lisbon", Country: "Portugal"},
	}}
	gen := &stubGenerator{text: restaurantResponse}
	svc := NewService(store, gen, nil)

	if _, err := svc.Search(context.Background(), SearchQuery{City: "Lisbon", Country: "Portugal"}); err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(store.restaurants) != 2 {
		t.Fatalf("persisted restaurants = %d, want 2 (one pre-existing, one new)", len(store.restaurants))
	}
}

func TestSearchPromptCarriesConstraints(t *testing.T) {
	req := buildSearchRequest(SearchQuery{
		City: "Hanoi", Country: "Vietnam",
		FoodType: "Vegetarian", CuisineType: "Local",
		PriceRange: "Budget", NumResults: 6,
	})
	for _, fragment := range []string{
		"Find 6 real restaurants in Hanoi, Vietnam",
		"Vegetarian",
		"Budget ($5-$15 per person)",
		"traditional restaurants of Vietnam",
		"opening_hours",
	} {
		if !strings.Contains(req.Prompt, fragment) {
			t.Errorf("prompt missing %q", fragment)
		}
	}
	if req.Temperature != 0.5 {
		t.Errorf("temperature = %v, want 0.5", req.Temperature)
	}
}

func TestSearchProviderFailureSurfaces(t *testing.T) {
	store := &fakeRestaurantStore{}
	gen := &stubGenerator{err: &ai.ProviderError{Err: errors.New("unavailable")}}
	svc := NewService(store, gen, nil)

	_, err := svc.Search(context.Background(), SearchQuery{City: "Lisbon", Country: "Portugal"})
	var pe *ai.ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ai.ProviderError, got %v", err)
	}
	if len(store.restaurants) != 0 {
		t.Fatal("nothing may persist after a provider failure")
	}
}
