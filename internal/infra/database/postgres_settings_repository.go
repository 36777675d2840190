package database

import (
	"context"
	"database/sql"
	"fmt"

	"medicine_expiry_notifier/internal/domain/settings"
)

// ErrSettingsNotFound signals the legitimate "nothing configured" state.
var ErrSettingsNotFound = fmt.Errorf("notification settings not found")

type PostgresSettingsRepository struct {
	db *sql.DB
}

func NewPostgresSettingsRepository(db *sql.DB) *PostgresSettingsRepository {
	return &PostgresSettingsRepository{db: db}
}

// GetLatest returns the most recently updated settings record. The settings
// are externally mutated, so every call hits the database; no caching.
func (r *PostgresSettingsRepository) GetLatest(ctx context.Context) (*settings.Settings, error) {
	query := `SELECT id, email_enabled, push_enabled, daily_enabled, weekly_enabled, monthly_enabled,
                      notification_time, email, push_endpoint, push_p256dh, push_auth, created_at, updated_at
               FROM notification_settings
               ORDER BY updated_at DESC LIMIT 1`

	s := &settings.Settings{}
	err := r.db.QueryRowContext(ctx, query).Scan(
		&s.ID, &s.EmailEnabled, &s.PushEnabled, &s.DailyEnabled, &s.WeeklyEnabled, &s.MonthlyEnabled,
		&s.NotificationTime, &s.Email, &s.PushEndpoint, &s.PushP256dh, &s.PushAuth, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("error getting latest notification settings: %w", err)
	}
	return s, nil
}

func (r *PostgresSettingsRepository) Save(ctx context.Context, s *settings.Settings) error {
	if s.ID == 0 {
		query := `INSERT INTO notification_settings
                   (email_enabled, push_enabled, daily_enabled, weekly_enabled, monthly_enabled,
                    notification_time, email, push_endpoint, push_p256dh, push_auth)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
                   RETURNING id, created_at, updated_at`
		err := r.db.QueryRowContext(ctx, query,
			s.EmailEnabled, s.PushEnabled, s.DailyEnabled, s.WeeklyEnabled, s.MonthlyEnabled,
			s.NotificationTime, s.Email, s.PushEndpoint, s.PushP256dh, s.PushAuth,
		).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return fmt.Errorf("error creating notification settings: %w", err)
		}
		return nil
	}

	query := `UPDATE notification_settings
               SET email_enabled = $1, push_enabled = $2, daily_enabled = $3, weekly_enabled = $4,
                   monthly_enabled = $5, notification_time = $6, email = $7, push_endpoint = $8,
                   push_p256dh = $9, push_auth = $10, updated_at = NOW()
               WHERE id = $11
               RETURNING updated_at`
	err := r.db.QueryRowContext(ctx, query,
		s.EmailEnabled, s.PushEnabled, s.DailyEnabled, s.WeeklyEnabled, s.MonthlyEnabled,
		s.NotificationTime, s.Email, s.PushEndpoint, s.PushP256dh, s.PushAuth, s.ID,
	).Scan(&s.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrSettingsNotFound
		}
		return fmt.Errorf("error updating notification settings: %w", err)
	}
	return nil
}
