package jobs

import (
	"context"
	"log/slog"
	"time"

	"pizzeria/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// staleOrderThreshold is how long an order may sit pending before the kitchen
// is warned about it.
const staleOrderThreshold = 15 * time.Minute

// StaleOrderAlertJob periodically warns about pending orders that have been
// waiting longer than the threshold, so they are not silently forgotten.
type StaleOrderAlertJob struct {
	pendingHandler queries.GetPendingOrdersQueryHandler
	cron           *cron.Cron
	logger         *slog.Logger
}

// NewStaleOrderAlertJob creates a job that checks for stale pending orders
// every minute.
func NewStaleOrderAlertJob(
	pendingHandler queries.GetPendingOrdersQueryHandler,
	logger *slog.Logger,
) *StaleOrderAlertJob {
	return &StaleOrderAlertJob{
		pendingHandler: pendingHandler,
		cron:           cron.New(cron.WithSeconds()),
		logger:         logger.With("component", "stale_order_alert_job"),
	}
}

// Start begins the stale order alert job to run every minute.
func (j *StaleOrderAlertJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		pending, err := j.pendingHandler.Handle(ctx, queries.NewGetPendingOrdersQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order alert job failed to read pending queue", "error", err)
			return
		}

		cutoff := time.Now().UTC().Add(-staleOrderThreshold)
		for _, view := range pending {
			if view.CreatedAt.Before(cutoff) {
				j.logger.WarnContext(ctx, "Order has been pending for too long",
					"code", view.Code,
					"waiting", time.Since(view.CreatedAt).Round(time.Second).String(),
				)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order alert job started (running every minute)")
	return nil
}

// Stop stops the stale order alert job.
func (j *StaleOrderAlertJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order alert job stopped")
}
