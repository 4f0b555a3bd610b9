package store

import (
	"context"
	"fmt"

	"github.com/focus-functions/internal/config"
	"github.com/focus-functions/internal/domain"
	"github.com/focus-functions/internal/infrastructure/dynamo"
	"github.com/focus-functions/internal/infrastructure/redisstore"
)

// OTPStore reads and purges the OTP collection.
type OTPStore interface {
	Snapshot(ctx context.Context) (domain.OTPSnapshot, error)
	DeleteBatch(ctx context.Context, keys []string) error
	BatchLimit() int
}

// Open returns the OTP store selected by cfg.StoreBackend and a close func.
func Open(ctx context.Context, cfg *config.Config) (OTPStore, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendDynamo:
		client, err := dynamo.NewClient(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		dynamo.Bootstrap(ctx, client, cfg.DynamoTables)
		return dynamo.NewOTPRepo(client, cfg.DynamoTables.OTPs), func() {}, nil
	case config.BackendRedis:
		client := redisstore.NewClient(cfg)
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		return redisstore.NewOTPStore(client, cfg.Redis.Prefix), func() { _ = client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}
}
