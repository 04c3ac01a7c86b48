// Package hotel recommends hotels through the LLM client and keeps the
// results as a queryable catalog in Postgres.
package hotel

// Hotel is one recommendation, enriched with location data before persisting.
type Hotel struct {
	ID            int64    `json:"hotel_id,omitempty"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Location      string   `json:"location"`
	City          string   `json:"city"`
	Country       string   `json:"country"`
	PricePerNight float64  `json:"price_per_night"`
	Rating        float64  `json:"rating"`
	RoomType      string   `json:"room_type"`
	Amenities     []string `json:"amenities"`
	ImageURL      string   `json:"image_url"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	MapsLink      string   `json:"maps_link,omitempty"`
}

// hotelList is the JSON envelope the model returns.
type hotelList struct {
	Hotels []Hotel `json:"hotels"`
}

// SearchQuery drives a fresh LLM search.
type SearchQuery struct {
	City       string
	Country    string
	RoomType   string
	Amenities  []string
	PriceRange string // Budget / Medium / Luxury
	NumResults int
}

// Filter selects from already-persisted hotels.
type Filter struct {
	City      string
	Country   string
	PriceMin  *float64
	PriceMax  *float64
	RatingMin *float64
	RoomType  string // "" or "All" means any
	SortBy    string // rating_desc (default), rating_asc, price_low, price_high
}
