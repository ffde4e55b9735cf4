package jobs

import (
	"context"
	"log/slog"
	"time"

	"livehaul/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// FundingReminderJob periodically sweeps the escrow ledger for payments that
// have been pending funding past the grace period and publishes an overdue
// event for each.
type FundingReminderJob struct {
	handler  commands.RemindUnfundedPaymentsCommandHandler
	cron     *cron.Cron
	logger   *slog.Logger
	schedule string
	grace    time.Duration
}

// NewFundingReminderJob creates a new funding reminder job.
// schedule is a six-field cron expression; grace is how long a payment may
// stay unfunded before it counts as overdue.
func NewFundingReminderJob(
	handler commands.RemindUnfundedPaymentsCommandHandler,
	schedule string,
	grace time.Duration,
	logger *slog.Logger,
) *FundingReminderJob {
	return &FundingReminderJob{
		handler:  handler,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "funding_reminder_job"),
		schedule: schedule,
		grace:    grace,
	}
}

// Start begins the funding reminder job on its configured schedule.
func (j *FundingReminderJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewRemindUnfundedPaymentsCommand(j.grace)
		if err != nil {
			j.logger.ErrorContext(ctx, "Funding reminder command rejected", "error", err)
			return
		}

		if err = j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Funding reminder job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Funding reminder job started",
		"schedule", j.schedule, "grace_period", j.grace)
	return nil
}

// Stop stops the funding reminder job.
func (j *FundingReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Funding reminder job stopped")
}
