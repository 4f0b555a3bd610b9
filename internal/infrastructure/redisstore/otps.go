package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/focus-functions/internal/domain"
	"github.com/redis/go-redis/v9"
)

// OTPStore keeps the OTP collection in a single hash: field = record key,
// value = JSON {"code": ..., "createdAt": ...}.
type OTPStore struct {
	client redis.UniversalClient
	key    string
}

func NewOTPStore(client redis.UniversalClient, prefix string) *OTPStore {
	if prefix == "" {
		prefix = "focus"
	}
	return &OTPStore{client: client, key: fmt.Sprintf("%s:%s", prefix, domain.OTPCollection)}
}

// Snapshot reads the whole hash with HGETALL. createdAt may be a number or a
// numeric string; a value that is not a JSON object is kept with no timestamp,
// which the sweeper never treats as expired.
func (s *OTPStore) Snapshot(ctx context.Context) (domain.OTPSnapshot, error) {
	raw, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("hgetall %s: %w", s.key, err)
	}
	snapshot := make(domain.OTPSnapshot, len(raw))
	for field, value := range raw {
		var rec domain.OTPRecord
		if err := json.Unmarshal([]byte(value), &rec); err != nil {
			slog.WarnContext(ctx, "undecodable otp record, keeping it", "key", field, "err", err)
			rec = domain.OTPRecord{}
		}
		rec.Key = field
		snapshot[field] = rec
	}
	return snapshot, nil
}

// BatchLimit is 0: a single HDEL takes any number of fields.
func (s *OTPStore) BatchLimit() int { return 0 }

// DeleteBatch removes all keys with one HDEL, which redis applies atomically.
func (s *OTPStore) DeleteBatch(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.HDel(ctx, s.key, keys...).Err(); err != nil {
		return fmt.Errorf("hdel %s: %w", s.key, err)
	}
	return nil
}
