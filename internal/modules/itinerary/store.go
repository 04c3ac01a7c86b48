package itinerary

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles trip persistence backed by PostgreSQL.
type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// FindDuplicateTrips returns the ids of persisted trips equivalent to the
// candidate identity: same city, country, state-or-absence-of-state, exact
// day count and party size, and candidate budget inside the closed ±10%
// interval around the stored budget. Day count is derived from the stored
// dates with the same inclusive rule as TripLengthDays.
func (s *Store) FindDuplicateTrips(ctx context.Context, id TripIdentity) ([]int64, error) {
	rows, err := s.db.Query(ctx, `
		SELECT trip_id FROM trips
		WHERE user_id = $1
		  AND destination_city = $2
		  AND destination_country = $3
		  AND (end_date - start_date) + 1 = $4
		  AND $5 BETWEEN budget * 0.9 AND budget * 1.1
		  AND num_people = $6
		  AND (($7 = '' AND (destination_state IS NULL OR destination_state = ''))
		       OR ($7 <> '' AND destination_state = $7))`,
		id.UserID, id.City, id.Country, id.NumDays, id.Budget, id.NumPeople, id.State,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var tripID int64
		if err := rows.Scan(&tripID); err != nil {
			return nil, err
		}
		ids = append(ids, tripID)
	}
	return ids, rows.Err()
}

// Insert persists a trip and returns the generated identifier.
// An empty state is stored as NULL.
func (s *Store) Insert(ctx context.Context, t *Trip) (int64, error) {
	var id int64
	err := s.db.QueryRow(ctx, `
		INSERT INTO trips (
			user_id, destination_city, destination_state, destination_country,
			start_date, end_date, budget, currency, trip_type, food_preference,
			num_people, itinerary_json
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING trip_id`,
		t.UserID, t.City, normalizeState(t.State), t.Country,
		t.StartDate, t.EndDate, t.Budget, t.Currency, t.TripType, t.FoodPreference,
		t.NumPeople, t.Itinerary,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Store) Get(ctx context.Context, tripID int64) (*Trip, error) {
	row := s.db.QueryRow(ctx, `
		SELECT trip_id, user_id, destination_city, destination_state, destination_country,
		       start_date, end_date, budget, currency, trip_type, food_preference,
		       num_people, itinerary_json, created_at
		FROM trips
		WHERE trip_id = $1`, tripID,
	)
	t, err := scanTrip(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return t, err
}

func (s *Store) ListByUser(ctx context.Context, userID int64) ([]Trip, error) {
	rows, err := s.db.Query(ctx, `
		SELECT trip_id, user_id, destination_city, destination_state, destination_country,
		       start_date, end_date, budget, currency, trip_type, food_preference,
		       num_people, itinerary_json, created_at
		FROM trips
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, *t)
	}
	return trips, rows.Err()
}

// Delete removes a trip owned by userID. Deleting another user's trip, or a
// missing one, returns ErrNotFound.
func (s *Store) Delete(ctx context.Context, tripID, userID int64) error {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM trips WHERE trip_id = $1 AND user_id = $2`, tripID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Stats summarizes a user's trip history.
type Stats struct {
	TotalTrips       int     `json:"total_trips"`
	TotalBudget      float64 `json:"total_budget"`
	CountriesVisited int     `json:"countries_visited"`
}

func (s *Store) StatsByUser(ctx context.Context, userID int64) (Stats, error) {
	var st Stats
	err := s.db.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(budget), 0), COUNT(DISTINCT destination_country)
		FROM trips
		WHERE user_id = $1`, userID,
	).Scan(&st.TotalTrips, &st.TotalBudget, &st.CountriesVisited)
	return st, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrip(row rowScanner) (*Trip, error) {
	var t Trip
	err := row.Scan(
		&t.ID, &t.UserID, &t.City, &t.State, &t.Country,
		&t.StartDate, &t.EndDate, &t.Budget, &t.Currency, &t.TripType, &t.FoodPreference,
		&t.NumPeople, &t.Itinerary, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func normalizeState(state *string) *string {
	if state == nil || *state == "" {
		return nil
	}
	return state
}
