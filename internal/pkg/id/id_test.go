package id

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAt_EmbedsTimestamp(t *testing.T) {
	at := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	parsed, err := ulid.Parse(NewAt(at))

	require.NoError(t, err)
	assert.Equal(t, at.UnixMilli(), int64(parsed.Time()))
}

func TestNew_SortsByTime(t *testing.T) {
	earlier := NewAt(time.Date(2026, 10, 19, 11, 0, 0, 0, time.UTC))
	later := NewAt(time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC))
	assert.Less(t, earlier, later)
	assert.Len(t, New(), 26)
}
