package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"medicine_expiry_notifier/internal/domain/channel"
	"medicine_expiry_notifier/internal/domain/medicine"
	"medicine_expiry_notifier/internal/domain/notification"
	"medicine_expiry_notifier/internal/domain/settings"
	idb "medicine_expiry_notifier/internal/infra/database"

	"github.com/sirupsen/logrus"
)

// NotificationService defines the operations of the expiry check engine.
type NotificationService interface {
	// RunCheckCycle evaluates all enabled cadences once. With forceCheck
	// the time-of-day window gate is bypassed.
	RunCheckCycle(ctx context.Context, forceCheck bool) error
}

// ExpiryNotificationService implements NotificationService. One invocation
// is a single sequential flow: window gate, then the daily, weekly and
// monthly cadences in that order. Settings are fetched fresh at the start
// of the cycle and again immediately before each send, since the record
// may be mutated externally in between. No mutual exclusion is applied
// between overlapping invocations.
type ExpiryNotificationService struct {
	medicineRepo medicine.Repository
	settingsRepo settings.Repository
	logRepo      notification.LogRepository
	emailSender  channel.EmailSender
	pushSender   channel.PushSender
	logger       *logrus.Entry
	now          func() time.Time
}

func NewExpiryNotificationService(
	mr medicine.Repository,
	sr settings.Repository,
	lr notification.LogRepository,
	es channel.EmailSender,
	ps channel.PushSender,
	logger *logrus.Entry,
) *ExpiryNotificationService {
	return &ExpiryNotificationService{
		medicineRepo: mr,
		settingsRepo: sr,
		logRepo:      lr,
		emailSender:  es,
		pushSender:   ps,
		logger:       logger,
		now:          time.Now,
	}
}

// RunCheckCycle runs one check cycle. Cadence failures are caught and
// logged here so a periodic trigger never crashes; only a failure to load
// the settings record is returned to the caller.
func (s *ExpiryNotificationService) RunCheckCycle(ctx context.Context, forceCheck bool) error {
	cfg, err := s.settingsRepo.GetLatest(ctx)
	if err != nil {
		if err == idb.ErrSettingsNotFound {
			s.logger.Info("No notification settings configured, skipping check cycle")
			return nil
		}
		return fmt.Errorf("failed to load notification settings: %w", err)
	}

	now := s.now()
	if !forceCheck {
		ok, err := withinWindow(now, cfg.NotificationTime)
		if err != nil {
			return err
		}
		if !ok {
			s.logger.WithField("target_time", cfg.NotificationTime).Debug("Outside notification window, skipping check cycle")
			return nil
		}
	}

	if err := s.processDailyNotifications(ctx, now, cfg); err != nil {
		s.logger.WithError(err).Error("Daily notification processing failed")
	}
	if err := s.processWeeklyNotifications(ctx, now, cfg); err != nil {
		s.logger.WithError(err).Error("Weekly notification processing failed")
	}
	if err := s.processMonthlyNotifications(ctx, now, cfg); err != nil {
		s.logger.WithError(err).Error("Monthly notification processing failed")
	}
	return nil
}

// processDailyNotifications handles the daily cadence: not-yet-notified
// medicines expiring between now and the end of the current week, soonest
// first. After a successful consolidated send every selected medicine is
// marked notified; the send happens strictly before the mark and a send
// failure leaves the flags untouched, so the next cycle picks the same
// medicines up again.
func (s *ExpiryNotificationService) processDailyNotifications(ctx context.Context, now time.Time, cfg *settings.Settings) error {
	if !cfg.DailyEnabled {
		return nil
	}

	meds, err := s.medicineRepo.ListExpiringBetween(ctx, now, endOfWeek(now), medicine.NotNotifiedOnly)
	if err != nil {
		return fmt.Errorf("daily: failed to list expiring medicines: %w", err)
	}
	if len(meds) == 0 {
		s.logger.Debug("Daily check: no unnotified medicines expiring this week")
		return nil
	}

	message := composeSummary(notification.CadenceDaily, meds, now)
	if err := s.sendNotification(ctx, meds[0], notification.CadenceDaily, message, true); err != nil {
		return err
	}

	ids := make([]int64, len(meds))
	for i, m := range meds {
		ids[i] = m.ID
	}
	if err := s.medicineRepo.MarkNotified(ctx, ids, s.now()); err != nil {
		return fmt.Errorf("daily: failed to mark medicines notified: %w", err)
	}
	s.logger.WithField("count", len(meds)).Info("Daily expiry notification sent")
	return nil
}

// processWeeklyNotifications handles the weekly cadence. It only applies
// on Mondays and never mutates medicine state, so already-notified
// medicines reappear in the weekly summary.
func (s *ExpiryNotificationService) processWeeklyNotifications(ctx context.Context, now time.Time, cfg *settings.Settings) error {
	if !cfg.WeeklyEnabled || !isWeeklyDay(now) {
		return nil
	}

	meds, err := s.medicineRepo.ListExpiringBetween(ctx, now, endOfWeek(now), medicine.NotifiedAny)
	if err != nil {
		return fmt.Errorf("weekly: failed to list expiring medicines: %w", err)
	}
	if len(meds) == 0 {
		s.logger.Debug("Weekly check: no medicines expiring this week")
		return nil
	}

	message := composeSummary(notification.CadenceWeekly, meds, now)
	if err := s.sendNotification(ctx, meds[0], notification.CadenceWeekly, message, true); err != nil {
		return err
	}
	s.logger.WithField("count", len(meds)).Info("Weekly expiry notification sent")
	return nil
}

// processMonthlyNotifications handles the monthly cadence: 1st of the
// month only, everything expiring before the end of the month, no state
// mutation.
func (s *ExpiryNotificationService) processMonthlyNotifications(ctx context.Context, now time.Time, cfg *settings.Settings) error {
	if !cfg.MonthlyEnabled || !isMonthlyDay(now) {
		return nil
	}

	meds, err := s.medicineRepo.ListExpiringBetween(ctx, now, endOfMonth(now), medicine.NotifiedAny)
	if err != nil {
		return fmt.Errorf("monthly: failed to list expiring medicines: %w", err)
	}
	if len(meds) == 0 {
		s.logger.Debug("Monthly check: no medicines expiring this month")
		return nil
	}

	message := composeSummary(notification.CadenceMonthly, meds, now)
	if err := s.sendNotification(ctx, meds[0], notification.CadenceMonthly, message, true); err != nil {
		return err
	}
	s.logger.WithField("count", len(meds)).Info("Monthly expiry notification sent")
	return nil
}

// sendNotification dispatches one rendered message across the enabled
// channels, email first, then push, each attempt logged individually. A
// channel failure is logged as a failed entry and then returned, aborting
// the remaining channels and any state update the caller would perform.
// med is the representative medicine used for logging and, in
// non-consolidated mode, the single record whose notified state is updated
// here after both channels succeed.
func (s *ExpiryNotificationService) sendNotification(ctx context.Context, med *medicine.Medicine, cadence notification.CadenceType, message string, consolidated bool) error {
	// Re-fetch settings: the record may have changed since the cycle began.
	cfg, err := s.settingsRepo.GetLatest(ctx)
	if err != nil {
		if err == idb.ErrSettingsNotFound {
			s.logger.Warn("Notification settings disappeared before send, skipping")
			return nil
		}
		return fmt.Errorf("failed to reload notification settings: %w", err)
	}

	if cfg.EmailEnabled && cfg.Email != "" {
		subject := emailSubject(cadence)
		var sendErr error
		if consolidated {
			sendErr = s.emailSender.SendConsolidated(ctx, cfg.Email, subject, message)
		} else {
			sendErr = s.emailSender.SendSingle(ctx, cfg.Email, subject, med)
		}
		if sendErr != nil {
			s.appendLog(ctx, med.ID, cadence, notification.ChannelEmail, notification.StatusFailed, message, cfg.Email, sendErr)
			return fmt.Errorf("email delivery failed: %w", sendErr)
		}
		s.appendLog(ctx, med.ID, cadence, notification.ChannelEmail, notification.StatusSent, message, cfg.Email, nil)
	}

	if cfg.PushEnabled && cfg.PushEndpoint != "" {
		sub := channel.PushSubscription{
			Endpoint: cfg.PushEndpoint,
			P256dh:   cfg.PushP256dh,
			Auth:     cfg.PushAuth,
		}
		if err := s.pushSender.Send(ctx, sub, message); err != nil {
			s.appendLog(ctx, med.ID, cadence, notification.ChannelPush, notification.StatusFailed, message, "", err)
			return fmt.Errorf("push delivery failed: %w", err)
		}
		s.appendLog(ctx, med.ID, cadence, notification.ChannelPush, notification.StatusSent, message, "", nil)
	}

	if !consolidated {
		if err := s.medicineRepo.UpdateNotified(ctx, med.ID, true, s.now()); err != nil {
			return fmt.Errorf("failed to update notified state for medicine %d: %w", med.ID, err)
		}
	}
	return nil
}

// appendLog writes one delivery log entry. Log persistence is best effort:
// a write failure is surfaced in the process log but never replaces the
// delivery outcome the caller is propagating.
func (s *ExpiryNotificationService) appendLog(ctx context.Context, medicineID int64, cadence notification.CadenceType, ch notification.Channel, status notification.DeliveryStatus, message, recipient string, deliveryErr error) {
	entry := &notification.LogEntry{
		MedicineID: medicineID,
		Cadence:    cadence,
		Channel:    ch,
		Status:     status,
		Message:    message,
	}
	if recipient != "" {
		entry.Recipient = sql.NullString{String: recipient, Valid: true}
	}
	if deliveryErr != nil {
		entry.ErrorDetail = sql.NullString{String: deliveryErr.Error(), Valid: true}
	}

	if err := s.logRepo.Append(ctx, entry); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"cadence": cadence,
			"channel": ch,
			"status":  status,
		}).Error("Failed to write notification log entry")
	}
}
