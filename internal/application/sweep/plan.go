package sweep

import (
	"sort"
	"time"

	"github.com/focus-functions/internal/domain"
)

// Plan is the set of keys one sweep will delete.
type Plan struct {
	Cutoff   int64 // ms since epoch; records created strictly before are expired
	Keys     []string
	Deferred int // expired records left for a later run
}

// DeletedCount is the number of records the plan removes.
func (p Plan) DeletedCount() int { return len(p.Keys) }

// Cutoff returns now minus the OTP lifetime, in milliseconds since epoch.
func Cutoff(now time.Time) int64 {
	return now.UnixMilli() - domain.OTPLifetime.Milliseconds()
}

// BuildPlan selects every record in snapshot whose createdAt is strictly less
// than the cutoff for now. Keys are sorted so batches are deterministic.
func BuildPlan(now time.Time, snapshot domain.OTPSnapshot) Plan {
	p := Plan{Cutoff: Cutoff(now)}
	for key, rec := range snapshot {
		if rec.ExpiredBefore(p.Cutoff) {
			p.Keys = append(p.Keys, key)
		}
	}
	sort.Strings(p.Keys)
	return p
}

// Limit caps the plan at n keys, deferring the rest. n <= 0 means no cap.
// Keys stay sorted, so successive runs work through the backlog in order.
func (p Plan) Limit(n int) Plan {
	if n <= 0 || len(p.Keys) <= n {
		return p
	}
	p.Deferred += len(p.Keys) - n
	p.Keys = p.Keys[:n:n]
	return p
}
