package destination

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

var ErrNotCached = errors.New("destination not cached")

// Store persists guides in Postgres and keeps a hot copy in Redis.
// Either backend is optional; a nil client degrades to the other level.
type Store struct {
	db    *pgxpool.Pool
	redis *redis.Client
	ttl   time.Duration
}

func NewStore(db *pgxpool.Pool, rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{db: db, redis: rdb, ttl: ttl}
}

func cacheKey(city, country string) string {
	return "destguide:" + strings.ToLower(city) + "|" + strings.ToLower(country)
}

// GetCached returns the guide from Redis if present, falling back to the
// Postgres table. A Postgres hit refills Redis.
func (s *Store) GetCached(ctx context.Context, city, country string) (*Guide, error) {
	if s.redis != nil {
		raw, err := s.redis.Get(ctx, cacheKey(city, country)).Result()
		if err == nil {
			var g Guide
			if err := json.Unmarshal([]byte(raw), &g); err == nil {
				return &g, nil
			}
			// Corrupt entry, fall through to Postgres.
		} else if !errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("redis get: %w", err)
		}
	}

	if s.db == nil {
		return nil, ErrNotCached
	}

	var (
		g                     Guide
		places, foods, images []byte
	)
	err := s.db.QueryRow(ctx, `
		SELECT city, country, description, popular_places, culture_info,
		       local_language, famous_foods, best_time_to_visit, local_tips, images_json
		FROM destinations_cache
		WHERE LOWER(city) = LOWER($1) AND LOWER(country) = LOWER($2)
		ORDER BY updated_at DESC
		LIMIT 1`, city, country,
	).Scan(&g.City, &g.Country, &g.Description, &places, &g.Culture,
		&g.LocalLanguage, &foods, &g.BestTimeToVisit, &g.LocalTips, &images)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotCached
	}
	if err != nil {
		return nil, err
	}
	if len(places) > 0 {
		if err := json.Unmarshal(places, &g.PopularPlaces); err != nil {
			return nil, err
		}
	}
	if len(foods) > 0 {
		if err := json.Unmarshal(foods, &g.FamousFoods); err != nil {
			return nil, err
		}
	}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &g.Images); err != nil {
			return nil, err
		}
	}

	s.fillRedis(ctx, &g)
	return &g, nil
}

// Save upserts the guide into Postgres and refreshes the Redis entry.
func (s *Store) Save(ctx context.Context, g *Guide) error {
	if s.db != nil {
		places, err := json.Marshal(g.PopularPlaces)
		if err != nil {
			return err
		}
		foods, err := json.Marshal(g.FamousFoods)
		if err != nil {
			return err
		}
		images, err := json.Marshal(g.Images)
		if err != nil {
			return err
		}
		_, err = s.db.Exec(ctx, `
			INSERT INTO destinations_cache (
				city, country, description, popular_places, culture_info,
				local_language, famous_foods, best_time_to_visit, local_tips, images_json
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (city, country) DO UPDATE SET
				description        = EXCLUDED.description,
				popular_places     = EXCLUDED.popular_places,
				culture_info       = EXCLUDED.culture_info,
				local_language     = EXCLUDED.local_language,
				famous_foods       = EXCLUDED.famous_foods,
				best_time_to_visit = EXCLUDED.best_time_to_visit,
				local_tips         = EXCLUDED.local_tips,
				images_json        = EXCLUDED.images_json,
				updated_at         = NOW()`,
			g.City, g.Country, g.Description, places, g.Culture,
			g.LocalLanguage, foods, g.BestTimeToVisit, g.LocalTips, images,
		)
		if err != nil {
			return err
		}
	}

	s.fillRedis(ctx, g)
	return nil
}

func (s *Store) fillRedis(ctx context.Context, g *Guide) {
	if s.redis == nil {
		return
	}
	payload, err := json.Marshal(g)
	if err != nil {
		return
	}
	// Best effort: a failed cache write must not fail the request.
	s.redis.Set(ctx, cacheKey(g.City, g.Country), payload, s.ttl)
}
