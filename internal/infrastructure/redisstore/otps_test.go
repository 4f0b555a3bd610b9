package redisstore

import (
	"context"
	"fmt"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/focus-functions/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoreForTest(t *testing.T) (*miniredis.Miniredis, *OTPStore) {
	t.Helper()
	m := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
		m.Close()
	})
	return m, NewOTPStore(client, "test")
}

func hkeys(t *testing.T, m *miniredis.Miniredis) []string {
	t.Helper()
	keys, err := m.HKeys("test:otps")
	require.NoError(t, err)
	return keys
}

func TestOTPStore_Snapshot_Empty(t *testing.T) {
	_, store := newStoreForTest(t)

	snap, err := store.Snapshot(context.Background())

	require.NoError(t, err)
	assert.Empty(t, snap)
}

func TestOTPStore_Snapshot_DecodesRecords(t *testing.T) {
	m, store := newStoreForTest(t)
	m.HSet("test:otps", "k1", `{"code":"123456","createdAt":1700000000000}`)
	m.HSet("test:otps", "k2", `not json`)
	m.HSet("test:otps", "k3", `{"code":123456}`)

	snap, err := store.Snapshot(context.Background())

	require.NoError(t, err)
	require.Len(t, snap, 3)
	assert.Equal(t, domain.MillisOf(1700000000000), snap["k1"].CreatedAt)
	assert.Equal(t, "k1", snap["k1"].Key)
	assert.False(t, snap["k2"].CreatedAt.Valid)
	assert.False(t, snap["k3"].CreatedAt.Valid)
}

func TestOTPStore_Snapshot_StringTimestampStaysFresh(t *testing.T) {
	m, store := newStoreForTest(t)
	now := time.Now()
	m.HSet("test:otps", "fresh", fmt.Sprintf(`{"code":"1","createdAt":"%d"}`, now.UnixMilli()))
	m.HSet("test:otps", "stale", fmt.Sprintf(`{"code":"2","createdAt":"%d"}`, now.Add(-10*time.Minute).UnixMilli()))

	snap, err := store.Snapshot(context.Background())

	require.NoError(t, err)
	cutoff := now.Add(-domain.OTPLifetime).UnixMilli()
	assert.Equal(t, domain.MillisOf(now.UnixMilli()), snap["fresh"].CreatedAt)
	assert.False(t, snap["fresh"].ExpiredBefore(cutoff))
	assert.True(t, snap["stale"].ExpiredBefore(cutoff))
}

func TestOTPStore_Snapshot_UndecodableIsNeverExpired(t *testing.T) {
	m, store := newStoreForTest(t)
	m.HSet("test:otps", "broken", `[1,2,3]`)

	snap, err := store.Snapshot(context.Background())

	require.NoError(t, err)
	assert.False(t, snap["broken"].ExpiredBefore(time.Now().UnixMilli()))
}

func TestOTPStore_DeleteBatch_RemovesOnlyGivenKeys(t *testing.T) {
	m, store := newStoreForTest(t)
	m.HSet("test:otps", "a", `{"createdAt":1}`)
	m.HSet("test:otps", "b", `{"createdAt":2}`)
	m.HSet("test:otps", "c", `{"createdAt":3}`)

	require.NoError(t, store.DeleteBatch(context.Background(), []string{"a", "c"}))

	assert.Equal(t, []string{"b"}, hkeys(t, m))
}

func TestOTPStore_DeleteBatch_Error(t *testing.T) {
	m, store := newStoreForTest(t)
	m.HSet("test:otps", "a", `{"createdAt":1}`)
	m.SetError("READONLY replica")

	err := store.DeleteBatch(context.Background(), []string{"a"})

	assert.ErrorContains(t, err, "READONLY")
	m.SetError("")
	assert.Equal(t, []string{"a"}, hkeys(t, m))
}
