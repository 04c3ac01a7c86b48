// Package bookmark keeps per-user favorites: saved trips, curated trips that
// only exist as JSON payloads, and hotel/restaurant bookmarks.
package bookmark

import (
	"encoding/json"
	"errors"
	"time"
)

var ErrBadRequest = errors.New("bad bookmark request")

// Kind discriminates hotel and restaurant bookmarks in one table.
type Kind string

const (
	KindHotel      Kind = "hotel"
	KindRestaurant Kind = "restaurant"
)

func (k Kind) valid() bool {
	return k == KindHotel || k == KindRestaurant
}

// CuratedTrip is a hand-picked trip card favorited straight from the landing
// page. It has no trips row; the whole card travels as a JSON payload keyed
// by title and destination.
type CuratedTrip struct {
	Title       string          `json:"title"`
	Destination string          `json:"destination"`
	Payload     json.RawMessage `json:"payload"`
}

// FavoriteTrip is one favorites entry; exactly one of TripID or Curated is
// set.
type FavoriteTrip struct {
	FavoriteID  int64        `json:"favorite_id"`
	TripID      *int64       `json:"trip_id,omitempty"`
	Curated     *CuratedTrip `json:"curated,omitempty"`
	FavoritedAt time.Time    `json:"favorited_at"`
}

// Favorites groups a user's favorites by origin.
type Favorites struct {
	SavedTrips   []FavoriteTrip `json:"saved_trips"`
	CuratedTrips []FavoriteTrip `json:"curated_trips"`
}

// Bookmark is a saved hotel or restaurant. Name plus location identifies the
// item within a user's bookmarks; the full card is kept as JSON.
type Bookmark struct {
	BookmarkID   int64           `json:"bookmark_id"`
	Kind         Kind            `json:"item_type"`
	Name         string          `json:"name"`
	Location     string          `json:"location"`
	City         string          `json:"city"`
	Country      string          `json:"country"`
	Payload      json.RawMessage `json:"payload,omitempty"`
	BookmarkedAt time.Time       `json:"bookmarked_at"`
}

// Bookmarks groups a user's bookmarks by kind.
type Bookmarks struct {
	Hotels      []Bookmark `json:"hotels"`
	Restaurants []Bookmark `json:"restaurants"`
}
