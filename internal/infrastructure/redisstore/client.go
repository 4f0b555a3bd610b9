package redisstore

import (
	"github.com/focus-functions/internal/config"
	"github.com/redis/go-redis/v9"
)

// NewClient creates a redis client from configuration.
func NewClient(cfg *config.Config) redis.UniversalClient {
	return redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:    []string{cfg.Redis.Addr},
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}
