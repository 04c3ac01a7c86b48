// Package itinerary generates day-by-day trip plans through the LLM client
// and persists them, suppressing duplicate trips per user.
package itinerary

import (
	"encoding/json"
	"errors"
	"time"
)

var (
	ErrBadRequest = errors.New("bad itinerary request")
	ErrNotFound   = errors.New("trip not found")
)

// ItinerarySpec is the target schema the model is asked to produce.
// The day count is reported as the model returned it; a mismatch with the
// requested trip length is a content-quality concern, not a parse failure,
// and is never auto-repaired.
type ItinerarySpec struct {
	TripOverview       string    `json:"trip_overview"`
	TotalEstimatedCost float64   `json:"total_estimated_cost"`
	DailyItinerary     []DaySpec `json:"daily_itinerary"`
}

type DaySpec struct {
	Day           int                `json:"day"`
	Date          string             `json:"date"`
	Title         string             `json:"title"`
	Summary       string             `json:"summary"`
	Activities    []ActivitySpec     `json:"activities"`
	Meals         []MealSpec         `json:"meals"`
	Accommodation *AccommodationSpec `json:"accommodation,omitempty"`
}

type ActivitySpec struct {
	Time          string  `json:"time"`
	Activity      string  `json:"activity"`
	Description   string  `json:"description"`
	Location      string  `json:"location"`
	EstimatedCost float64 `json:"estimated_cost"`
	Duration      string  `json:"duration"`
	MapsLink      string  `json:"maps_link,omitempty"`
}

type MealSpec struct {
	Type          string  `json:"type"`
	Restaurant    string  `json:"restaurant"`
	Cuisine       string  `json:"cuisine"`
	EstimatedCost float64 `json:"estimated_cost"`
	MapsLink      string  `json:"maps_link,omitempty"`
}

type AccommodationSpec struct {
	Hotel         string  `json:"hotel"`
	Area          string  `json:"area"`
	EstimatedCost float64 `json:"estimated_cost"`
}

// Trip is a persisted itinerary row. State is nil when the destination has
// no state/province; empty strings are normalized to nil before insert.
type Trip struct {
	ID             int64
	UserID         int64
	City           string
	State          *string
	Country        string
	StartDate      time.Time
	EndDate        time.Time
	Budget         float64
	Currency       string
	TripType       string
	FoodPreference string
	NumPeople      int
	Itinerary      json.RawMessage
	CreatedAt      time.Time
}

// TripIdentity is the attribute tuple deciding whether two trip requests are
// "the same" for duplicate suppression. Budget matches within a closed ±10%
// interval around the stored trip's budget; everything else matches exactly.
type TripIdentity struct {
	UserID    int64
	City      string
	State     string // "" means absent
	Country   string
	NumDays   int
	Budget    float64
	NumPeople int
}

// TripLengthDays counts trip days inclusive of both endpoints: a trip whose
// start and end date coincide is 1 day. Every derived use of trip length
// (prompt sizing, duplicate matching, stored num_days) goes through here.
func TripLengthDays(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours()/24) + 1
}
