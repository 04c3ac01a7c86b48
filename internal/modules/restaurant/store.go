package restaurant

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

// InsertIfAbsent persists a restaurant unless one with the same name already
// exists in that city and country. Returns true when a row was inserted.
func (s *Store) InsertIfAbsent(ctx context.Context, r *Restaurant) (bool, error) {
	dishes, err := json.Marshal(r.PopularDishes)
	if err != nil {
		return false, err
	}
	tag, err := s.db.Exec(ctx, `
		INSERT INTO restaurants (
			name, description, location, city, country, cuisine_type,
			food_type, price_range, rating, image_url, popular_dishes,
			opening_hours, closing_hours, latitude, longitude, maps_link
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (name, city, country) DO NOTHING`,
		r.Name, r.Description, r.Location, r.City, r.Country, r.CuisineType,
		r.FoodType, r.PriceRange, r.Rating, r.ImageURL, dishes,
		r.OpeningHours, r.ClosingHours, r.Latitude, r.Longitude, r.MapsLink,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// priceRankSQL orders the three coarse price buckets; unknown values sort last.
const priceRankSQL = `CASE price_range
	WHEN 'Budget' THEN 1
	WHEN 'Medium' THEN 2
	WHEN 'Expensive' THEN 3
	ELSE 4 END`

// List returns persisted restaurants matching the filter.
func (s *Store) List(ctx context.Context, f Filter) ([]Restaurant, error) {
	query := `
		SELECT restaurant_id, name, description, location, city, country, cuisine_type,
		       food_type, price_range, rating, image_url, popular_dishes,
		       opening_hours, closing_hours, latitude, longitude, maps_link
		FROM restaurants
		WHERE city = $1 AND country = $2`
	args := []any{f.City, f.Country}

	if f.FoodType != "" && f.FoodType != "All" {
		args = append(args, f.FoodType)
		query += fmt.Sprintf(" AND food_type = $%d", len(args))
	}
	if f.CuisineType != "" && f.CuisineType != "All" {
		args = append(args, "%"+f.CuisineType+"%")
		query += fmt.Sprintf(" AND cuisine_type ILIKE $%d", len(args))
	}
	if f.PriceRange != "" && f.PriceRange != "All" {
		args = append(args, f.PriceRange)
		query += fmt.Sprintf(" AND price_range = $%d", len(args))
	}
	if f.RatingMin != nil {
		args = append(args, *f.RatingMin)
		query += fmt.Sprintf(" AND rating >= $%d", len(args))
	}

	switch f.SortBy {
	case "rating_asc":
		query += " ORDER BY rating ASC"
	case "price_low":
		query += " ORDER BY " + priceRankSQL + " ASC"
	case "price_high":
		query += " ORDER BY " + priceRankSQL + " DESC"
	default:
		query += " ORDER BY rating DESC"
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []Restaurant
	for rows.Next() {
		var (
			r      Restaurant
			dishes []byte
		)
		if err := rows.Scan(
			&r.ID, &r.Name, &r.Description, &r.Location, &r.City, &r.Country, &r.CuisineType,
			&r.FoodType, &r.PriceRange, &r.Rating, &r.ImageURL, &dishes,
			&r.OpeningHours, &r.ClosingHours, &r.Latitude, &r.Longitude, &r.MapsLink,
		); err != nil {
			return nil, err
		}
		if len(dishes) > 0 {
			if err := json.Unmarshal(dishes, &r.PopularDishes); err != nil {
				return nil, err
			}
		}
		restaurants = append(restaurants, r)
	}
	return restaurants, rows.Err()
}
