package jobs

import (
	"context"
	"log/slog"

	"pizzeria/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// KitchenReportJob periodically logs the state of the kitchen queue: how many
// orders are waiting for a pizzaiolo and how many are in preparation.
type KitchenReportJob struct {
	pendingHandler    queries.GetPendingOrdersQueryHandler
	inProgressHandler queries.GetInProgressOrdersQueryHandler
	cron              *cron.Cron
	logger            *slog.Logger
}

// NewKitchenReportJob creates a job that reports the queue backlog every minute.
func NewKitchenReportJob(
	pendingHandler queries.GetPendingOrdersQueryHandler,
	inProgressHandler queries.GetInProgressOrdersQueryHandler,
	logger *slog.Logger,
) *KitchenReportJob {
	return &KitchenReportJob{
		pendingHandler:    pendingHandler,
		inProgressHandler: inProgressHandler,
		cron:              cron.New(cron.WithSeconds()),
		logger:            logger.With("component", "kitchen_report_job"),
	}
}

// Start begins the kitchen report job to run every minute.
func (j *KitchenReportJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		pending, err := j.pendingHandler.Handle(ctx, queries.NewGetPendingOrdersQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Kitchen report job failed to read pending queue", "error", err)
			return
		}

		inProgress, err := j.inProgressHandler.Handle(ctx, queries.NewGetInProgressOrdersQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Kitchen report job failed to read preparation queue", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Kitchen queue report",
			"pending", len(pending),
			"in_progress", len(inProgress),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Kitchen report job started (running every minute)")
	return nil
}

// Stop stops the kitchen report job.
func (j *KitchenReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Kitchen report job stopped")
}
