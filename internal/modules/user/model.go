// Package user handles accounts, authentication and preferences.
package user

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("user not found")
	ErrBadRequest         = errors.New("bad user request")
)

type User struct {
	ID              int64     `json:"user_id"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	FullName        string    `json:"full_name"`
	Country         string    `json:"country"`
	MobileNumber    *string   `json:"mobile_number,omitempty"`
	ProfileImageURL *string   `json:"profile_image_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// Preferences drive the defaults pre-filled into the planning form.
type Preferences struct {
	DefaultCurrency      string `json:"default_currency"`
	PreferredTripType    string `json:"preferred_trip_type"`
	PreferredFoodType    string `json:"preferred_food_type"`
	PreferredBudgetRange string `json:"preferred_budget_range"`
}

const minPasswordLen = 8

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// HashPassword hashes with SHA-256, matching the stored credential format.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// CurrencyForCountry maps a country name to its currency code, defaulting
// to USD. Matching is substring-based so "United States of America" works.
func CurrencyForCountry(country string) string {
	c := strings.ToLower(country)
	switch {
	case strings.Contains(c, "india"):
		return "INR"
	case containsAny(c, "usa", "united states", "america"):
		return "USD"
	case containsAny(c, "uk", "united kingdom", "england", "britain"):
		return "GBP"
	case strings.Contains(c, "japan"):
		return "JPY"
	case strings.Contains(c, "australia"):
		return "AUD"
	case strings.Contains(c, "canada"):
		return "CAD"
	case containsAny(c, "france", "germany", "italy", "spain", "portugal", "netherlands", "belgium"):
		return "EUR"
	default:
		return "USD"
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
