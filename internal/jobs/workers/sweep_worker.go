package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"karma-server/internal/observability"
)

// StaleCallCloser ends calls that have been active for too long.
type StaleCallCloser interface {
	ExpireStaleCalls(ctx context.Context, olderThan time.Duration) ([]string, error)
}

// SweepWorker closes calls orphaned by a crashed or restarted server.
type SweepWorker struct {
	calls  StaleCallCloser
	maxAge time.Duration
	logger *observability.Logger
}

func NewSweepWorker(calls StaleCallCloser, maxAge time.Duration, logger *observability.Logger) *SweepWorker {
	return &SweepWorker{calls: calls, maxAge: maxAge, logger: logger}
}

// ProcessSweepTask processes a stale call sweep task (for Asynq)
func (w *SweepWorker) ProcessSweepTask(ctx context.Context, _ *asynq.Task) error {
	ids, err := w.calls.ExpireStaleCalls(ctx, w.maxAge)
	if err != nil {
		return fmt.Errorf("failed to expire stale calls: %w", err)
	}
	if len(ids) > 0 {
		w.logger.Info(ctx, fmt.Sprintf("expired %d stale calls", len(ids)))
	}
	return nil
}
