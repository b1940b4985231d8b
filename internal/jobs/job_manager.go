// Package jobs provides the scheduled background tasks of the shipment
// ledger, built on github.com/robfig/cron/v3. The only job today is the
// escrow expiry sweep, which refunds expired escrows on a configurable
// schedule. JobManager gives the composition root one start/stop surface.
package jobs

import (
	"fmt"
	"log/slog"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	escrowExpiryJob *EscrowExpiryJob
}

// NewJobManager creates a job manager wiring every job to its handler.
func NewJobManager(
	sweepHandler commands.SweepExpiredEscrowsCommandHandler,
	sweepSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		escrowExpiryJob: NewEscrowExpiryJob(sweepHandler, sweepSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.escrowExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start escrow expiry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.escrowExpiryJob.Stop()
}
