// Package restaurant recommends restaurants through the LLM client and keeps
// the results as a queryable catalog in Postgres.
package restaurant

// Restaurant is one recommendation, enriched with location data before
// persisting.
type Restaurant struct {
	ID            int64    `json:"restaurant_id,omitempty"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Location      string   `json:"location"`
	City          string   `json:"city"`
	Country       string   `json:"country"`
	CuisineType   string   `json:"cuisine_type"`
	FoodType      string   `json:"food_type"`
	PriceRange    string   `json:"price_range"`
	Rating        float64  `json:"rating"`
	PopularDishes []string `json:"popular_dishes"`
	OpeningHours  string   `json:"opening_hours"`
	ClosingHours  string   `json:"closing_hours"`
	ImageURL      string   `json:"image_url"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	MapsLink      string   `json:"maps_link,omitempty"`
}

// restaurantList is the JSON envelope the model returns.
type restaurantList struct {
	Restaurants []Restaurant `json:"restaurants"`
}

// SearchQuery drives a fresh LLM search.
type SearchQuery struct {
	City        string
	Country     string
	FoodType    string // Vegetarian / Non-Vegetarian / Vegan / Mixed
	CuisineType string
	PriceRange  string // Budget / Medium / Expensive
	NumResults  int
}

// Filter selects from already-persisted restaurants.
type Filter struct {
	City        string
	Country     string
	FoodType    string // "" or "All" means any
	CuisineType string // "" or "All" means any
	PriceRange  string // "" or "All" means any
	RatingMin   *float64
	SortBy      string // rating_desc (default), rating_asc, price_low, price_high
}
