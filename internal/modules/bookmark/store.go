package bookmark

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// AddFavoriteTrip favorites a saved trip. Re-favoriting is a no-op.
func (s *Store) AddFavoriteTrip(ctx context.Context, userID, tripID int64) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO favorite_trips (user_id, trip_id, is_popular_trip)
		VALUES ($1, $2, FALSE)
		ON CONFLICT (user_id, trip_id) DO NOTHING`,
		userID, tripID,
	)
	return err
}

// AddCuratedFavorite favorites a curated trip card keyed by title and
// destination. Re-favoriting is a no-op.
func (s *Store) AddCuratedFavorite(ctx context.Context, userID int64, trip CuratedTrip) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO favorite_trips (
			user_id, trip_id, is_popular_trip,
			popular_trip_title, popular_trip_destination, popular_trip_data
		) VALUES ($1, NULL, TRUE, $2, $3, $4)
		ON CONFLICT (user_id, popular_trip_title, popular_trip_destination)
			WHERE trip_id IS NULL DO NOTHING`,
		userID, trip.Title, trip.Destination, trip.Payload,
	)
	return err
}

func (s *Store) RemoveFavoriteTrip(ctx context.Context, userID, tripID int64) error {
	_, err := s.db.Exec(ctx,
		`DELETE FROM favorite_trips WHERE user_id = $1 AND trip_id = $2`,
		userID, tripID)
	return err
}

func (s *Store) RemoveCuratedFavorite(ctx context.Context, userID int64, title, destination string) error {
	_, err := s.db.Exec(ctx, `
		DELETE FROM favorite_trips
		WHERE user_id = $1 AND trip_id IS NULL
		  AND popular_trip_title = $2 AND popular_trip_destination = $3`,
		userID, title, destination)
	return err
}

func (s *Store) IsTripFavorited(ctx context.Context, userID, tripID int64) (bool, error) {
	var fav bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM favorite_trips WHERE user_id = $1 AND trip_id = $2)`,
		userID, tripID).Scan(&fav)
	return fav, err
}

// Favorites returns all of a user's favorites, newest first in each group.
func (s *Store) Favorites(ctx context.Context, userID int64) (*Favorites, error) {
	rows, err := s.db.Query(ctx, `
		SELECT favorite_id, trip_id, popular_trip_title, popular_trip_destination,
		       popular_trip_data, created_at
		FROM favorite_trips
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favs Favorites
	for rows.Next() {
		var (
			f                  FavoriteTrip
			title, destination *string
			payload            []byte
		)
		if err := rows.Scan(&f.FavoriteID, &f.TripID, &title, &destination, &payload, &f.FavoritedAt); err != nil {
			return nil, err
		}
		if f.TripID != nil {
			favs.SavedTrips = append(favs.SavedTrips, f)
			continue
		}
		curated := CuratedTrip{Payload: payload}
		if title != nil {
			curated.Title = *title
		}
		if destination != nil {
			curated.Destination = *destination
		}
		f.Curated = &curated
		favs.CuratedTrips = append(favs.CuratedTrips, f)
	}
	return &favs, rows.Err()
}

// AddBookmark saves a hotel or restaurant card. Re-bookmarking the same item
// is a no-op.
func (s *Store) AddBookmark(ctx context.Context, userID int64, b Bookmark) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO bookmarks (user_id, item_type, item_name, item_location,
		                       item_city, item_country, item_data)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, item_type, item_name, item_location) DO NOTHING`,
		userID, string(b.Kind), b.Name, b.Location, b.City, b.Country, b.Payload,
	)
	return err
}

func (s *Store) RemoveBookmark(ctx context.Context, userID int64, kind Kind, name, location string) error {
	_, err := s.db.Exec(ctx, `
		DELETE FROM bookmarks
		WHERE user_id = $1 AND item_type = $2 AND item_name = $3 AND item_location = $4`,
		userID, string(kind), name, location)
	return err
}

func (s *Store) IsBookmarked(ctx context.Context, userID int64, kind Kind, name, location string) (bool, error) {
	var marked bool
	err := s.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM bookmarks
			WHERE user_id = $1 AND item_type = $2 AND item_name = $3 AND item_location = $4
		)`,
		userID, string(kind), name, location).Scan(&marked)
	return marked, err
}

// Bookmarks returns all of a user's bookmarks, newest first in each group.
func (s *Store) Bookmarks(ctx context.Context, userID int64) (*Bookmarks, error) {
	rows, err := s.db.Query(ctx, `
		SELECT bookmark_id, item_type, item_name, item_location,
		       item_city, item_country, item_data, created_at
		FROM bookmarks
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var marks Bookmarks
	for rows.Next() {
		var (
			b       Bookmark
			kind    string
			payload []byte
		)
		if err := rows.Scan(&b.BookmarkID, &kind, &b.Name, &b.Location,
			&b.City, &b.Country, &payload, &b.BookmarkedAt); err != nil {
			return nil, err
		}
		b.Kind = Kind(kind)
		b.Payload = payload
		switch b.Kind {
		case KindHotel:
			marks.Hotels = append(marks.Hotels, b)
		case KindRestaurant:
			marks.Restaurants = append(marks.Restaurants, b)
		}
	}
	return &marks, rows.Err()
}
