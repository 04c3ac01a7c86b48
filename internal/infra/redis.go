package infra

import "github.com/redis/go-redis/v9"

// NewRedis returns a Redis client used for the destination-guide cache.
func NewRedis(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}
