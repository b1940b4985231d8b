package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/application/usecases/commands"
)

// EscrowExpiryJob periodically refunds active escrows whose deadline has
// passed, returning the unreleased balance to the buyer.
type EscrowExpiryJob struct {
	handler  commands.SweepExpiredEscrowsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewEscrowExpiryJob creates the sweep job with the given cron schedule
// (six-field expression, seconds first).
func NewEscrowExpiryJob(
	handler commands.SweepExpiredEscrowsCommandHandler,
	schedule string,
	logger *slog.Logger,
) *EscrowExpiryJob {
	return &EscrowExpiryJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "escrow_expiry_job"),
	}
}

// Start schedules the sweep.
func (j *EscrowExpiryJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewSweepExpiredEscrowsCommand()

		refunded, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Escrow expiry sweep failed", "error", err)
			return
		}

		if refunded > 0 {
			j.logger.InfoContext(ctx, "Expired escrows refunded", "count", refunded)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Escrow expiry job started", "schedule", j.schedule)
	return nil
}

// Stop stops the sweep job.
func (j *EscrowExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Escrow expiry job stopped")
}
