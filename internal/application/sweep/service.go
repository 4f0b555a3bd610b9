package sweep

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/focus-functions/internal/domain"
	"github.com/focus-functions/internal/metrics"
	"github.com/focus-functions/internal/pkg/id"
)

// Store is the record store as seen by the sweeper.
type Store interface {
	// Snapshot reads the whole OTP collection. An empty collection returns an empty map.
	Snapshot(ctx context.Context) (domain.OTPSnapshot, error)
	// DeleteBatch removes exactly keys in one all-or-nothing write.
	DeleteBatch(ctx context.Context, keys []string) error
	// BatchLimit is the most keys one DeleteBatch accepts; 0 means unbounded.
	BatchLimit() int
}

// Service runs the OTP expiry sweep.
type Service interface {
	Run(ctx context.Context) (domain.SweepResult, error)
	Preview(ctx context.Context) (Plan, error)
}

type service struct {
	store Store
	now   func() time.Time
}

// NewService creates a sweeper. now may be nil, in which case time.Now is used.
func NewService(store Store, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{store: store, now: now}
}

func (s *service) Run(ctx context.Context) (domain.SweepResult, error) {
	now := s.now()
	runID := id.NewAt(now)
	log := slog.With("run_id", runID)

	snapshot, err := s.store.Snapshot(ctx)
	if err != nil {
		return s.fail(ctx, log, err)
	}
	if len(snapshot) == 0 {
		metrics.SweepRuns.WithLabelValues("empty").Inc()
		log.InfoContext(ctx, domain.NoOTPsMessage)
		return domain.SweepResult{Message: domain.NoOTPsMessage}, nil
	}

	plan := BuildPlan(now, snapshot).Limit(s.store.BatchLimit())
	if plan.Deferred > 0 {
		log.WarnContext(ctx, "expired otps exceed one batch, deferring to next run", "deferred", plan.Deferred)
	}
	if plan.DeletedCount() > 0 {
		if err := s.store.DeleteBatch(ctx, plan.Keys); err != nil {
			return s.fail(ctx, log, err)
		}
	}

	metrics.SweepRuns.WithLabelValues("success").Inc()
	metrics.SweepDeleted.Add(float64(plan.DeletedCount()))
	log.InfoContext(ctx, fmt.Sprintf("Cleanup complete. Deleted %d OTPs.", plan.DeletedCount()),
		"scanned", len(snapshot), "cutoff_ms", plan.Cutoff, "deferred", plan.Deferred)
	return domain.SweepResult{Success: true, DeletedCount: plan.DeletedCount()}, nil
}

// Preview computes the plan Run would execute now without deleting anything.
func (s *service) Preview(ctx context.Context) (Plan, error) {
	snapshot, err := s.store.Snapshot(ctx)
	if err != nil {
		return Plan{}, fmt.Errorf("read otp snapshot: %w", err)
	}
	return BuildPlan(s.now(), snapshot).Limit(s.store.BatchLimit()), nil
}

func (s *service) fail(ctx context.Context, log *slog.Logger, err error) (domain.SweepResult, error) {
	msg := "Failed to cleanup expired OTPs: " + err.Error()
	log.ErrorContext(ctx, "cleanup error", "msg", msg, "err", err)
	metrics.SweepRuns.WithLabelValues("error").Inc()
	return domain.SweepResult{}, domain.NewCallableError(domain.Internal, msg, err)
}
