package id

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// NewAt generates a ULID whose timestamp component is t. Invocation IDs use the
// invocation time so log lines from consecutive sweeps sort in schedule order.
func NewAt(t time.Time) string {
	return ulid.MustNew(ulid.Timestamp(t), rand.Reader).String()
}

// New generates a ULID for the current time.
func New() string {
	return NewAt(time.Now())
}
