package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}

func (s *Store) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	return exists, err
}

func (s *Store) Insert(ctx context.Context, u *User, passwordHash string) (int64, error) {
	var id int64
	err := s.db.QueryRow(ctx, `
		INSERT INTO users (username, email, password_hash, full_name, country)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING user_id`,
		u.Username, u.Email, passwordHash, u.FullName, u.Country,
	).Scan(&id)
	return id, err
}

// FindByCredentials resolves a username-or-email plus password hash to the
// matching account. No match means ErrInvalidCredentials.
func (s *Store) FindByCredentials(ctx context.Context, usernameOrEmail, passwordHash string) (*User, error) {
	row := s.db.QueryRow(ctx, `
		SELECT user_id, username, email, full_name, country, mobile_number, profile_image_url, created_at
		FROM users
		WHERE (username = $1 OR email = $1) AND password_hash = $2`,
		usernameOrEmail, passwordHash,
	)
	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrInvalidCredentials
	}
	return u, err
}

func (s *Store) Get(ctx context.Context, userID int64) (*User, error) {
	row := s.db.QueryRow(ctx, `
		SELECT user_id, username, email, full_name, country, mobile_number, profile_image_url, created_at
		FROM users
		WHERE user_id = $1`, userID,
	)
	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return u, err
}

// PasswordMatches reports whether the stored hash for userID equals hash.
func (s *Store) PasswordMatches(ctx context.Context, userID int64, hash string) (bool, error) {
	var matches bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE user_id = $1 AND password_hash = $2)`,
		userID, hash).Scan(&matches)
	return matches, err
}

func (s *Store) UpdatePassword(ctx context.Context, userID int64, hash string) error {
	_, err := s.db.Exec(ctx,
		`UPDATE users SET password_hash = $1 WHERE user_id = $2`, hash, userID)
	return err
}

// ProfileUpdate carries optional profile changes; nil fields are untouched.
// An empty MobileNumber clears the stored value.
type ProfileUpdate struct {
	FullName        *string
	Email           *string
	MobileNumber    *string
	ProfileImageURL *string
}

func (s *Store) UpdateProfile(ctx context.Context, userID int64, upd ProfileUpdate) error {
	sets := []string{}
	args := []any{}
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if upd.FullName != nil {
		add("full_name", *upd.FullName)
	}
	if upd.Email != nil {
		add("email", *upd.Email)
	}
	if upd.MobileNumber != nil {
		if *upd.MobileNumber == "" {
			add("mobile_number", nil)
		} else {
			add("mobile_number", *upd.MobileNumber)
		}
	}
	if upd.ProfileImageURL != nil {
		add("profile_image_url", *upd.ProfileImageURL)
	}
	if len(sets) == 0 {
		return ErrBadRequest
	}
	args = append(args, userID)
	query := fmt.Sprintf("UPDATE users SET %s WHERE user_id = $%d", strings.Join(sets, ", "), len(args))
	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) InsertPreferences(ctx context.Context, userID int64, p Preferences) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO user_preferences (user_id, default_currency, preferred_trip_type)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO NOTHING`,
		userID, p.DefaultCurrency, p.PreferredTripType,
	)
	return err
}

func (s *Store) GetPreferences(ctx context.Context, userID int64) (*Preferences, error) {
	var p Preferences
	err := s.db.QueryRow(ctx, `
		SELECT COALESCE(default_currency, ''), COALESCE(preferred_trip_type, ''),
		       COALESCE(preferred_food_type, ''), COALESCE(preferred_budget_range, '')
		FROM user_preferences
		WHERE user_id = $1`, userID,
	).Scan(&p.DefaultCurrency, &p.PreferredTripType, &p.PreferredFoodType, &p.PreferredBudgetRange)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// PreferencesUpdate carries optional preference changes; nil fields are
// untouched.
type PreferencesUpdate struct {
	DefaultCurrency      *string
	PreferredTripType    *string
	PreferredFoodType    *string
	PreferredBudgetRange *string
}

func (s *Store) UpdatePreferences(ctx context.Context, userID int64, upd PreferencesUpdate) error {
	sets := []string{}
	args := []any{}
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if upd.DefaultCurrency != nil {
		add("default_currency", *upd.DefaultCurrency)
	}
	if upd.PreferredTripType != nil {
		add("preferred_trip_type", *upd.PreferredTripType)
	}
	if upd.PreferredFoodType != nil {
		add("preferred_food_type", *upd.PreferredFoodType)
	}
	if upd.PreferredBudgetRange != nil {
		add("preferred_budget_range", *upd.PreferredBudgetRange)
	}
	if len(sets) == 0 {
		return ErrBadRequest
	}
	args = append(args, userID)
	query := fmt.Sprintf("UPDATE user_preferences SET %s WHERE user_id = $%d", strings.Join(sets, ", "), len(args))
	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.FullName, &u.Country,
		&u.MobileNumber, &u.ProfileImageURL, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
