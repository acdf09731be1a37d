package jobs

import (
	"context"
	"log/slog"
	"time"

	"winetrade/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// offerExpirySchedule sweeps once a minute. Offer validity deadlines carry
// minute granularity at most, so a tighter schedule buys nothing.
const offerExpirySchedule = "0 * * * * *"

// OfferExpiryJob periodically moves offers past their validity deadline to
// EXPIRED so stale offers cannot be accepted.
type OfferExpiryJob struct {
	handler commands.ExpireOffersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOfferExpiryJob creates the expiry sweep job.
func NewOfferExpiryJob(handler commands.ExpireOffersCommandHandler, logger *slog.Logger) *OfferExpiryJob {
	return &OfferExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "offer_expiry_job"),
	}
}

// Start schedules the sweep.
func (j *OfferExpiryJob) Start() error {
	_, err := j.cron.AddFunc(offerExpirySchedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewExpireOffersCommand(time.Now().UTC())
		if err != nil {
			j.logger.ErrorContext(ctx, "offer expiry command rejected", "error", err)
			return
		}

		result, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "offer expiry sweep failed", "error", err)
			return
		}
		if result.Expired > 0 || result.Failed > 0 {
			j.logger.InfoContext(ctx, "offer expiry sweep completed",
				"expired", result.Expired, "failed", result.Failed)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "offer expiry job started (running every minute)")
	return nil
}

// Stop stops the sweep.
func (j *OfferExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "offer expiry job stopped")
}
