package itinerary

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Adiraj90/Ai-trip-planner/internal/ai"
)

func TestTripLengthDays(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"same day is one day", day(2026, 3, 10), day(2026, 3, 10), 1},
		{"five calendar days inclusive", day(2026, 3, 10), day(2026, 3, 14), 5},
		{"month boundary", day(2026, 1, 30), day(2026, 2, 2), 4},
		{"reversed dates are non-positive", day(2026, 3, 10), day(2026, 3, 9), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TripLengthDays(tt.start, tt.end); got != tt.want {
				t.Fatalf("TripLengthDays() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestItineraryMaxTokens(t *testing.T) {
	tests := []struct {
		days int
		want int32
	}{
		{1, 8000},   // floor covers schema overhead on short trips
		{12, 8000},  // 12*600=7200, still under the floor
		{20, 12000}, // 20*600 between floor and ceiling
		{30, 16000}, // 30*600=18000, capped at the provider ceiling
	}
	for _, tt := range tests {
		if got := itineraryMaxTokens(tt.days); got != tt.want {
			t.Errorf("itineraryMaxTokens(%d) = %d, want %d", tt.days, got, tt.want)
		}
	}
}

func TestBuildItineraryRequest(t *testing.T) {
	cmd := GenerateCommand{
		City:           "Kyoto",
		Country:        "Japan",
		StartDate:      time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC),
		Budget:         2000,
		Currency:       "USD",
		TripTypes:      []string{"Culture", "Food"},
		FoodPreference: "Mixed",
		NumPeople:      2,
	}
	req := buildItineraryRequest(cmd, 5)

	if req.Temperature != 0.7 {
		t.Errorf("temperature = %v, want 0.7", req.Temperature)
	}
	if req.MaxTokens != 8000 {
		t.Errorf("max tokens = %d, want 8000", req.MaxTokens)
	}
	for _, fragment := range []string{
		"5-day travel itinerary for Kyoto, Japan",
		"2000.00 USD",
		"Culture, Food",
		`"daily_itinerary"`,
		"Include 5 days in daily_itinerary array",
	} {
		if !strings.Contains(req.Prompt, fragment) {
			t.Errorf("prompt missing %q", fragment)
		}
	}
}

// fakeTripStore is an in-memory TripStore mirroring the SQL duplicate
// predicate. The small epsilon keeps the closed ±10% interval inclusive
// under float rounding; the exact BETWEEN boundary is covered by the
// DB-backed store tests.
type fakeTripStore struct {
	trips  []Trip
	nextID int64
}

func (f *fakeTripStore) FindDuplicateTrips(_ context.Context, id TripIdentity) ([]int64, error) {
	const eps = 1e-9
	var ids []int64
	for _, tr := range f.trips {
		state := ""
		if tr.State != nil {
			state = *tr.State
		}
		if tr.UserID == id.UserID &&
			tr.City == id.City &&
			tr.Country == id.Country &&
			state == id.State &&
			tr.NumPeople == id.NumPeople &&
			TripLengthDays(tr.StartDate, tr.EndDate) == id.NumDays &&
			id.Budget >= tr.Budget*0.9-eps &&
			id.Budget <= tr.Budget*1.1+eps {
			ids = append(ids, tr.ID)
		}
	}
	return ids, nil
}

func (f *fakeTripStore) Insert(_ context.Context, tr *Trip) (int64, error) {
	f.nextID++
	tr.ID = f.nextID
	tr.CreatedAt = time.Now()
	f.trips = append(f.trips, *tr)
	return tr.ID, nil
}

func (f *fakeTripStore) Get(_ context.Context, tripID int64) (*Trip, error) {
	for i := range f.trips {
		if f.trips[i].ID == tripID {
			return &f.trips[i], nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeTripStore) ListByUser(_ context.Context, userID int64) ([]Trip, error) {
	var out []Trip
	for _, tr := range f.trips {
		if tr.UserID == userID {
			out = append(out, tr)
		}
	}
	return out, nil
}

func (f *fakeTripStore) Delete(_ context.Context, tripID, userID int64) error {
	for i, tr := range f.trips {
		if tr.ID == tripID && tr.UserID == userID {
			f.trips = append(f.trips[:i], f.trips[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeTripStore) StatsByUser(_ context.Context, userID int64) (Stats, error) {
	var st Stats
	countries := map[string]bool{}
	for _, tr := range f.trips {
		if tr.UserID != userID {
			continue
		}
		st.TotalTrips++
		st.TotalBudget += tr.Budget
		countries[tr.Country] = true
	}
	st.CountriesVisited = len(countries)
	return st, nil
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

// fencedItinerary is a model response wrapped in a json fence with one
// trailing comma, the two most common formatting defects.
const fencedItinerary = "```json\n" + `{
  "trip_overview": "A relaxed city break.",
  "total_estimated_cost": 1850.00,
  "daily_itinerary": [
    {
      "day": 1,
      "date": "2026-04-01",
      "title": "Arrival",
      "summary": "Settle in and explore the old town.",
      "activities": [
        {"time": "10:00 AM", "activity": "Old town walk", "description": "Guided stroll", "location": "Old Town Square", "estimated_cost": 20.00, "duration": "2 hours"}
      ],
      "meals": [
        {"type": "Dinner", "restaurant": "Casa Lisboa", "cuisine": "Portuguese", "estimated_cost": 45.00}
      ],
      "accommodation": {"hotel": "Hotel Central", "area": "Baixa", "estimated_cost": 150.00},
    }
  ]
}` + "\n```"

func baseCommand() GenerateCommand {
	return GenerateCommand{
		UserID:         7,
		City:           "Lisbon",
		Country:        "Portugal",
		StartDate:      time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC),
		Budget:         2000,
		Currency:       "USD",
		TripTypes:      []string{"Leisure"},
		FoodPreference: "Mixed",
		NumPeople:      2,
	}
}

func TestGenerateEndToEnd(t *testing.T) {
	store := &fakeTripStore{}
	gen := &stubGenerator{text: fencedItinerary}
	svc := NewService(store, gen)

	res, err := svc.Generate(context.Background(), baseCommand())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	// The model returned 1 day for a 5-day request: reported as-is, never
	// forcibly corrected.
	if len(res.Itinerary.DailyItinerary) != 1 {
		t.Fatalf("daily_itinerary length = %d, want 1 (as returned by model)", len(res.Itinerary.DailyItinerary))
	}
	if res.NumDays != 5 {
		t.Fatalf("NumDays = %d, want 5", res.NumDays)
	}
	if res.Itinerary.TotalEstimatedCost != 1850 {
		t.Fatalf("total_estimated_cost = %v", res.Itinerary.TotalEstimatedCost)
	}
	if res.Duplicate {
		t.Fatal("first save must not be a duplicate")
	}
	if res.TripID == nil || *res.TripID == 0 {
		t.Fatal("expected a persisted trip id")
	}
	if len(store.trips) != 1 {
		t.Fatalf("persisted trips = %d, want 1", len(store.trips))
	}

	day := res.Itinerary.DailyItinerary[0]
	if day.Activities[0].MapsLink == "" || day.Meals[0].MapsLink == "" {
		t.Fatal("activities and meals must carry maps links")
	}
}

func TestGenerateSecondEquivalentTripIsDuplicate(t *testing.T) {
	store := &fakeTripStore{}
	gen := &stubGenerator{text: fencedItinerary}
	svc := NewService(store, gen)

	first := baseCommand()
	first.Budget = 1000
	if _, err := svc.Generate(context.Background(), first); err != nil {
		t.Fatalf("first Generate() error = %v", err)
	}

	second := baseCommand()
	second.Budget = 1050 // within ±10% of the stored 1000
	res, err := svc.Generate(context.Background(), second)
	if err != nil {
		t.Fatalf("second Generate() error = %v", err)
	}

	if !res.Duplicate {
		t.Fatal("second equivalent request must be flagged duplicate")
	}
	if res.TripID != nil {
		t.Fatal("duplicate must not carry a persisted trip id")
	}
	if len(res.Itinerary.DailyItinerary) == 0 {
		t.Fatal("duplicate still returns the freshly generated itinerary")
	}
	if len(store.trips) != 1 {
		t.Fatalf("persisted trips = %d, want 1 (duplicate must not persist)", len(store.trips))
	}
}

func TestGenerateDistinctBudgetIsNotDuplicate(t *testing.T) {
	store := &fakeTripStore{}
	gen := &stubGenerator{text: fencedItinerary}
	svc := NewService(store, gen)

	first := baseCommand()
	first.Budget = 1000
	if _, err := svc.Generate(context.Background(), first); err != nil {
		t.Fatalf("first Generate() error = %v", err)
	}

	second := baseCommand()
	second.Budget = 1200 // outside ±10%
	res, err := svc.Generate(context.Background(), second)
	if err != nil {
		t.Fatalf("second Generate() error = %v", err)
	}
	if res.Duplicate || res.TripID == nil {
		t.Fatal("budget outside tolerance must persist a new trip")
	}
	if len(store.trips) != 2 {
		t.Fatalf("persisted trips = %d, want 2", len(store.trips))
	}
}

func TestGenerateAnonymousIsNeverPersisted(t *testing.T) {
	store := &fakeTripStore{}
	gen := &stubGenerator{text: fencedItinerary}
	svc := NewService(store, gen)

	cmd := baseCommand()
	cmd.UserID = 0
	res, err := svc.Generate(context.Background(), cmd)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if res.TripID != nil || len(store.trips) != 0 {
		t.Fatal("anonymous generation must not persist")
	}
}

func TestGenerateRejectsReversedDates(t *testing.T) {
	store := &fakeTripStore{}
	gen := &stubGenerator{text: fencedItinerary}
	svc := NewService(store, gen)

	cmd := baseCommand()
	cmd.StartDate, cmd.EndDate = cmd.EndDate, cmd.StartDate
	if _, err := svc.Generate(context.Background(), cmd); !errors.Is(err, ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
	if gen.calls != 0 {
		t.Fatal("provider must not be called for an invalid date range")
	}
}

func TestGenerateProviderFailureSurfaces(t *testing.T) {
	store := &fakeTripStore{}
	gen := &stubGenerator{err: &ai.ProviderError{Err: errors.New("rate limited")}}
	svc := NewService(store, gen)

	_, err := svc.Generate(context.Background(), baseCommand())
	var pe *ai.ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ai.ProviderError, got %v", err)
	}
	if len(store.trips) != 0 {
		t.Fatal("nothing may persist after a provider failure")
	}
}

func TestGenerateParseFailureSurfaces(t *testing.T) {
	store := &fakeTripStore{}
	// Truncated mid-object, as when the token budget runs out.
	gen := &stubGenerator{text: `{"trip_overview": "A trip", "daily_itinerary": [{"day":`}
	svc := NewService(store, gen)

	_, err := svc.Generate(context.Background(), baseCommand())
	var pe *ai.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ai.ParseError, got %v", err)
	}
	if pe.Length == 0 || pe.Raw == "" {
		t.Fatal("parse error must carry the raw response for diagnostics")
	}
	if len(store.trips) != 0 {
		t.Fatal("nothing may persist after a parse failure")
	}
}
