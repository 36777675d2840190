package scheduler

import (
	"context"
	"fmt"
	"time"

	"medicine_expiry_notifier/internal/app"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// checkTimeout bounds one cron-triggered check cycle.
const checkTimeout = 2 * time.Minute

// CheckScheduler triggers the expiry check cycle periodically. The cron
// spec fires frequently (every minute by default) and the service's own
// time window gate decides whether a given tick acts.
type CheckScheduler struct {
	cronEngine   *cron.Cron
	notifService app.NotificationService
	logger       *logrus.Entry
	cronSpec     string
}

func NewCheckScheduler(notifService app.NotificationService, logger *logrus.Entry, cronSpec string) *CheckScheduler {
	return &CheckScheduler{
		cronEngine:   cron.New(cron.WithLocation(time.Local)), // Use server's local time for cron
		notifService: notifService,
		logger:       logger,
		cronSpec:     cronSpec,
	}
}

func (s *CheckScheduler) Start() error {
	_, err := s.cronEngine.AddFunc(s.cronSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
		defer cancel()
		if err := s.notifService.RunCheckCycle(ctx, false); err != nil {
			s.logger.WithError(err).Error("Expiry check cycle failed")
		}
	})
	if err != nil {
		return fmt.Errorf("could not add expiry check cron job: %w", err)
	}

	s.cronEngine.Start()
	s.logger.WithField("cron_spec", s.cronSpec).Info("Expiry check scheduler started")
	return nil
}

func (s *CheckScheduler) Stop() {
	s.logger.Info("Stopping expiry check scheduler...")
	ctx := s.cronEngine.Stop() // Stops new runs, waits for running jobs.
	<-ctx.Done()
	s.logger.Info("Expiry check scheduler gracefully stopped")
}
