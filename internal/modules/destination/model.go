// Package destination generates city guides and serves them through a
// two-level cache: Redis with a TTL in front of a Postgres upsert table.
package destination

import "github.com/Adiraj90/Ai-trip-planner/internal/geo"

// Guide is the destination profile shown before planning a trip.
type Guide struct {
	City            string           `json:"city"`
	Country         string           `json:"country"`
	Description     string           `json:"description"`
	PopularPlaces   []Place          `json:"popular_places"`
	Culture         string           `json:"culture"`
	LocalLanguage   string           `json:"local_language"`
	FamousFoods     []Food           `json:"famous_foods"`
	BestTimeToVisit string           `json:"best_time_to_visit"`
	LocalTips       string           `json:"local_tips"`
	Images          []string         `json:"images"`
	Coordinates     *geo.Coordinates `json:"coordinates,omitempty"`
}

type Place struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	MapsLink    string   `json:"maps_link,omitempty"`
}

type Food struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// guideSpec is the JSON shape the model is asked for; city, country, images
// and coordinates are filled in by the service afterwards.
type guideSpec struct {
	Description     string  `json:"description"`
	PopularPlaces   []Place `json:"popular_places"`
	Culture         string  `json:"culture"`
	LocalLanguage   string  `json:"local_language"`
	FamousFoods     []Food  `json:"famous_foods"`
	BestTimeToVisit string  `json:"best_time_to_visit"`
	LocalTips       string  `json:"local_tips"`
}
