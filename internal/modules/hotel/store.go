package hotel

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// InsertIfAbsent persists a hotel unless one with the same name already
// exists in that city and country. Returns true when a row was inserted.
func (s *Store) InsertIfAbsent(ctx context.Context, h *Hotel) (bool, error) {
	amenities, err := json.Marshal(h.Amenities)
	if err != nil {
		return false, err
	}
	tag, err := s.db.Exec(ctx, `
		INSERT INTO hotels (
			name, description, location, city, country, price_per_night,
			rating, image_url, amenities, room_type, latitude, longitude, maps_link
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (name, city, country) DO NOTHING`,
		h.Name, h.Description, h.Location, h.City, h.Country, h.PricePerNight,
		h.Rating, h.ImageURL, amenities, h.RoomType, h.Latitude, h.Longitude, h.MapsLink,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// List returns persisted hotels matching the filter.
func (s *Store) List(ctx context.Context, f Filter) ([]Hotel, error) {
	query := `
		SELECT hotel_id, name, description, location, city, country, price_per_night,
		       rating, image_url, amenities, room_type, latitude, longitude, maps_link
		FROM hotels
		WHERE city = $1 AND country = $2`
	args := []any{f.City, f.Country}

	if f.PriceMin != nil {
		args = append(args, *f.PriceMin)
		query += fmt.Sprintf(" AND price_per_night >= $%d", len(args))
	}
	if f.PriceMax != nil {
		args = append(args, *f.PriceMax)
		query += fmt.Sprintf(" AND price_per_night <= $%d", len(args))
	}
	if f.RatingMin != nil {
		args = append(args, *f.RatingMin)
		query += fmt.Sprintf(" AND rating >= $%d", len(args))
	}
	if f.RoomType != "" && f.RoomType != "All" {
		args = append(args, "%"+f.RoomType+"%")
		query += fmt.Sprintf(" AND room_type ILIKE $%d", len(args))
	}

	switch f.SortBy {
	case "price_low":
		query += " ORDER BY price_per_night ASC"
	case "price_high":
		query += " ORDER BY price_per_night DESC"
	case "rating_asc":
		query += " ORDER BY rating ASC"
	default:
		query += " ORDER BY rating DESC"
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hotels []Hotel
	for rows.Next() {
		var (
			h         Hotel
			amenities []byte
		)
		if err := rows.Scan(
			&h.ID, &h.Name, &h.Description, &h.Location, &h.City, &h.Country, &h.PricePerNight,
			&h.Rating, &h.ImageURL, &amenities, &h.RoomType, &h.Latitude, &h.Longitude, &h.MapsLink,
		); err != nil {
			return nil, err
		}
		if len(amenities) > 0 {
			if err := json.Unmarshal(amenities, &h.Amenities); err != nil {
				return nil, err
			}
		}
		hotels = append(hotels, h)
	}
	return hotels, rows.Err()
}
