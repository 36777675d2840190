package database

import (
	"context"
	"database/sql"
	"fmt"

	"medicine_expiry_notifier/internal/domain/notification"
)

// PostgresLogRepository persists notification delivery attempts. The table
// is append-only: there are deliberately no update or delete methods.
type PostgresLogRepository struct {
	db *sql.DB
}

func NewPostgresLogRepository(db *sql.DB) *PostgresLogRepository {
	return &PostgresLogRepository{db: db}
}

func (r *PostgresLogRepository) Append(ctx context.Context, entry *notification.LogEntry) error {
	query := `INSERT INTO notification_logs (medicine_id, cadence_type, channel, status, message, recipient, error_detail)
               VALUES ($1, $2, $3, $4, $5, $6, $7)
               RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		entry.MedicineID, entry.Cadence, entry.Channel, entry.Status,
		entry.Message, entry.Recipient, entry.ErrorDetail,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("error appending notification log entry: %w", err)
	}
	return nil
}

func (r *PostgresLogRepository) ListByMedicine(ctx context.Context, medicineID int64) ([]*notification.LogEntry, error) {
	query := `SELECT id, medicine_id, cadence_type, channel, status, message, recipient, error_detail, created_at
               FROM notification_logs
               WHERE medicine_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, medicineID)
	if err != nil {
		return nil, fmt.Errorf("error querying notification logs by medicine: %w", err)
	}
	defer rows.Close()

	entries := make([]*notification.LogEntry, 0)
	for rows.Next() {
		e := &notification.LogEntry{}
		if err := rows.Scan(
			&e.ID, &e.MedicineID, &e.Cadence, &e.Channel, &e.Status,
			&e.Message, &e.Recipient, &e.ErrorDetail, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning notification log row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notification log rows: %w", err)
	}
	return entries, nil
}
