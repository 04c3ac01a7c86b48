package user

import (
	"context"

	"github.com/rs/zerolog/log"
)

// UserStore is the persistence contract the service needs. *Store implements
// it; tests substitute an in-memory fake.
type UserStore interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	Insert(ctx context.Context, u *User, passwordHash string) (int64, error)
	FindByCredentials(ctx context.Context, usernameOrEmail, passwordHash string) (*User, error)
	Get(ctx context.Context, userID int64) (*User, error)
	PasswordMatches(ctx context.Context, userID int64, hash string) (bool, error)
	UpdatePassword(ctx context.Context, userID int64, hash string) error
	UpdateProfile(ctx context.Context, userID int64, upd ProfileUpdate) error
	InsertPreferences(ctx context.Context, userID int64, p Preferences) error
	GetPreferences(ctx context.Context, userID int64) (*Preferences, error)
	UpdatePreferences(ctx context.Context, userID int64, upd PreferencesUpdate) error
}

type Service struct {
	store UserStore
}

func NewService(store UserStore) *Service {
	return &Service{store: store}
}

type RegisterCommand struct {
	Username string
	Email    string
	Password string
	FullName string
	Country  string
}

// Register creates an account and seeds preferences with the currency
// inferred from the user's country.
func (s *Service) Register(ctx context.Context, cmd RegisterCommand) (*User, error) {
	if cmd.Username == "" || !validEmail(cmd.Email) || len(cmd.Password) < minPasswordLen {
		return nil, ErrBadRequest
	}

	if taken, err := s.store.EmailExists(ctx, cmd.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrEmailTaken
	}
	if taken, err := s.store.UsernameExists(ctx, cmd.Username); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrUsernameTaken
	}

	u := &User{
		Username: cmd.Username,
		Email:    cmd.Email,
		FullName: cmd.FullName,
		Country:  cmd.Country,
	}
	id, err := s.store.Insert(ctx, u, HashPassword(cmd.Password))
	if err != nil {
		return nil, err
	}
	u.ID = id

	prefs := Preferences{
		DefaultCurrency:   CurrencyForCountry(cmd.Country),
		PreferredTripType: "Adventure",
	}
	if err := s.store.InsertPreferences(ctx, id, prefs); err != nil {
		// Account exists; preferences can be filled in later.
		log.Error().Err(err).Int64("user_id", id).Msg("failed to seed preferences")
	}

	log.Info().Int64("user_id", id).Str("username", cmd.Username).Msg("user registered")
	return u, nil
}

// Authenticate resolves a username or email plus password to the account.
func (s *Service) Authenticate(ctx context.Context, usernameOrEmail, password string) (*User, error) {
	if usernameOrEmail == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	return s.store.FindByCredentials(ctx, usernameOrEmail, HashPassword(password))
}

func (s *Service) Profile(ctx context.Context, userID int64) (*User, error) {
	return s.store.Get(ctx, userID)
}

// UpdateProfile applies partial profile changes. Changing the email to one
// already registered by another account fails with ErrEmailTaken.
func (s *Service) UpdateProfile(ctx context.Context, userID int64, upd ProfileUpdate) error {
	if upd.Email != nil {
		if !validEmail(*upd.Email) {
			return ErrBadRequest
		}
		current, err := s.store.Get(ctx, userID)
		if err != nil {
			return err
		}
		if *upd.Email != current.Email {
			taken, err := s.store.EmailExists(ctx, *upd.Email)
			if err != nil {
				return err
			}
			if taken {
				return ErrEmailTaken
			}
		}
	}
	return s.store.UpdateProfile(ctx, userID, upd)
}

// ChangePassword verifies the current password before setting a new one.
func (s *Service) ChangePassword(ctx context.Context, userID int64, current, next string) error {
	if len(next) < minPasswordLen {
		return ErrBadRequest
	}
	ok, err := s.store.PasswordMatches(ctx, userID, HashPassword(current))
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidCredentials
	}
	return s.store.UpdatePassword(ctx, userID, HashPassword(next))
}

func (s *Service) Preferences(ctx context.Context, userID int64) (*Preferences, error) {
	return s.store.GetPreferences(ctx, userID)
}

func (s *Service) UpdatePreferences(ctx context.Context, userID int64, upd PreferencesUpdate) error {
	return s.store.UpdatePreferences(ctx, userID, upd)
}
