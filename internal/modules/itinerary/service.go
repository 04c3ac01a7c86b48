package itinerary

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Adiraj90/Ai-trip-planner/internal/ai"
	"github.com/Adiraj90/Ai-trip-planner/internal/geo"
)

// TripStore is the persistence contract the service needs. *Store implements
// it; tests substitute an in-memory fake.
type TripStore interface {
	FindDuplicateTrips(ctx context.Context, id TripIdentity) ([]int64, error)
	Insert(ctx context.Context, t *Trip) (int64, error)
	Get(ctx context.Context, tripID int64) (*Trip, error)
	ListByUser(ctx context.Context, userID int64) ([]Trip, error)
	Delete(ctx context.Context, tripID, userID int64) error
	StatsByUser(ctx context.Context, userID int64) (Stats, error)
}

// Service orchestrates itinerary generation: duplicate reconciliation,
// LLM generation, normalization, map-link enrichment and persistence.
type Service struct {
	store TripStore
	llm   ai.TextGenerator
}

func NewService(store TripStore, llm ai.TextGenerator) *Service {
	return &Service{store: store, llm: llm}
}

type GenerateCommand struct {
	// UserID 0 means an anonymous request: generate but never persist.
	UserID         int64
	City           string
	State          string
	Country        string
	StartDate      time.Time
	EndDate        time.Time
	Budget         float64
	Currency       string
	TripTypes      []string
	FoodPreference string
	NumPeople      int
}

// GenerateResult carries the generated itinerary back to the caller.
// TripID is nil when nothing was persisted (anonymous or duplicate).
type GenerateResult struct {
	Itinerary ItinerarySpec `json:"itinerary"`
	NumDays   int           `json:"num_days"`
	TripID    *int64        `json:"trip_id,omitempty"`
	Duplicate bool          `json:"duplicate"`
}

// Generate runs one generation-and-save flow. An equivalent already-saved
// trip suppresses persistence but the fresh itinerary is still returned.
// Failures (provider, parse) surface unchanged; there are no retries.
//
// The duplicate check and the insert are not wrapped in a transaction:
// two concurrent saves of the same trip by the same user can both persist.
// Accepted for interactive single-user usage.
func (s *Service) Generate(ctx context.Context, cmd GenerateCommand) (*GenerateResult, error) {
	if cmd.City == "" || cmd.Country == "" || cmd.NumPeople < 1 {
		return nil, ErrBadRequest
	}
	if cmd.EndDate.Before(cmd.StartDate) {
		return nil, ErrBadRequest
	}
	numDays := TripLengthDays(cmd.StartDate, cmd.EndDate)

	duplicate := false
	if cmd.UserID != 0 {
		ids, err := s.store.FindDuplicateTrips(ctx, TripIdentity{
			UserID:    cmd.UserID,
			City:      cmd.City,
			State:     cmd.State,
			Country:   cmd.Country,
			NumDays:   numDays,
			Budget:    cmd.Budget,
			NumPeople: cmd.NumPeople,
		})
		if err != nil {
			return nil, err
		}
		if len(ids) > 0 {
			log.Warn().
				Int64("user_id", cmd.UserID).
				Str("city", cmd.City).
				Msg("duplicate trip detected, itinerary will not be saved")
			duplicate = true
		}
	}

	var spec ItinerarySpec
	req := buildItineraryRequest(cmd, numDays)
	if err := ai.GenerateStructured(ctx, s.llm, req, &spec); err != nil {
		return nil, err
	}

	// Day-count mismatches pass through as successful results; the model's
	// output is never forcibly corrected.
	if len(spec.DailyItinerary) != numDays {
		log.Warn().
			Int("want_days", numDays).
			Int("got_days", len(spec.DailyItinerary)).
			Msg("itinerary day count differs from requested trip length")
	}

	addMapLinks(&spec, cmd.City, cmd.Country)

	result := &GenerateResult{Itinerary: spec, NumDays: numDays, Duplicate: duplicate}

	if cmd.UserID != 0 && !duplicate {
		payload, err := json.Marshal(spec)
		if err != nil {
			return nil, err
		}
		var state *string
		if cmd.State != "" {
			state = &cmd.State
		}
		tripID, err := s.store.Insert(ctx, &Trip{
			UserID:         cmd.UserID,
			City:           cmd.City,
			State:          state,
			Country:        cmd.Country,
			StartDate:      cmd.StartDate,
			EndDate:        cmd.EndDate,
			Budget:         cmd.Budget,
			Currency:       cmd.Currency,
			TripType:       joinTripTypes(cmd.TripTypes),
			FoodPreference: cmd.FoodPreference,
			NumPeople:      cmd.NumPeople,
			Itinerary:      payload,
		})
		if err != nil {
			return nil, err
		}
		result.TripID = &tripID
	}

	return result, nil
}

// addMapLinks attaches a shareable maps link to every activity and meal.
// Links are query-based; itinerary enrichment never geocodes.
func addMapLinks(spec *ItinerarySpec, city, country string) {
	for di := range spec.DailyItinerary {
		day := &spec.DailyItinerary[di]
		for j := range day.Activities {
			if loc := day.Activities[j].Location; loc != "" {
				day.Activities[j].MapsLink = geo.LinkForQuery(loc + ", " + city + ", " + country)
			}
		}
		for mi := range day.Meals {
			if r := day.Meals[mi].Restaurant; r != "" {
				day.Meals[mi].MapsLink = geo.LinkForQuery(r + ", " + city + ", " + country)
			}
		}
	}
}

func (s *Service) ListTrips(ctx context.Context, userID int64) ([]Trip, error) {
	return s.store.ListByUser(ctx, userID)
}

func (s *Service) GetTrip(ctx context.Context, tripID int64) (*Trip, error) {
	return s.store.Get(ctx, tripID)
}

func (s *Service) DeleteTrip(ctx context.Context, tripID, userID int64) error {
	return s.store.Delete(ctx, tripID, userID)
}

func (s *Service) TripStats(ctx context.Context, userID int64) (Stats, error) {
	return s.store.StatsByUser(ctx, userID)
}

func joinTripTypes(types []string) string {
	return strings.Join(types, ", ")
}
