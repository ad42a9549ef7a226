package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/faculty-service/internal/service"
)

// StartTrackerReconciler runs the completion-flag reconciliation loop until
// the context is cancelled. Fact writes and their tracker updates are not
// one transaction, so a crash between them can leave the flags stale; each
// pass recomputes them from the actual fact rows. A non-positive interval
// disables the loop.
func StartTrackerReconciler(ctx context.Context, tracker *service.TrackerService, interval time.Duration, logger *zap.Logger) {
	if tracker == nil || interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				start := time.Now()
				if err := tracker.Reconcile(ctx); err != nil {
					logger.Warn("tracker reconciliation failed", zap.Error(err))
					continue
				}
				logger.Debug("tracker reconciliation pass complete",
					zap.Duration("took", time.Since(start)))
			}
		}
	}()
}
