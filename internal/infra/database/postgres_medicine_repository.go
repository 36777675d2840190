package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"medicine_expiry_notifier/internal/domain/medicine"

	"github.com/lib/pq" // For pq.Array and driver registration
)

// Custom errors
var ErrMedicineNotFound = fmt.Errorf("medicine not found")

type PostgresMedicineRepository struct {
	db *sql.DB
}

func NewPostgresMedicineRepository(db *sql.DB) *PostgresMedicineRepository {
	return &PostgresMedicineRepository{db: db}
}

func (r *PostgresMedicineRepository) Create(ctx context.Context, m *medicine.Medicine) error {
	query := `INSERT INTO medicines (name, expiry_date, quantity, batch_number, notified, last_notification_date)
               VALUES ($1, $2, $3, $4, $5, $6)
               RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, m.Name, m.ExpiryDate, m.Quantity, m.BatchNumber, m.Notified, m.LastNotificationDate).
		Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating medicine: %w", err)
	}
	return nil
}

func (r *PostgresMedicineRepository) GetByID(ctx context.Context, id int64) (*medicine.Medicine, error) {
	query := `SELECT id, name, expiry_date, quantity, batch_number, notified, last_notification_date, created_at, updated_at
               FROM medicines WHERE id = $1`
	m := &medicine.Medicine{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&m.ID, &m.Name, &m.ExpiryDate, &m.Quantity, &m.BatchNumber,
		&m.Notified, &m.LastNotificationDate, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrMedicineNotFound
		}
		return nil, fmt.Errorf("error getting medicine by ID: %w", err)
	}
	return m, nil
}

func (r *PostgresMedicineRepository) ListAll(ctx context.Context) ([]*medicine.Medicine, error) {
	query := `SELECT id, name, expiry_date, quantity, batch_number, notified, last_notification_date, created_at, updated_at
               FROM medicines ORDER BY expiry_date ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing all medicines: %w", err)
	}
	defer rows.Close()
	return scanMedicines(rows)
}

func (r *PostgresMedicineRepository) ListExpiringBetween(ctx context.Context, start, end time.Time, filter medicine.NotifiedFilter) ([]*medicine.Medicine, error) {
	query := `SELECT id, name, expiry_date, quantity, batch_number, notified, last_notification_date, created_at, updated_at
               FROM medicines
               WHERE expiry_date >= $1 AND expiry_date <= $2`
	switch filter {
	case medicine.NotNotifiedOnly:
		query += ` AND notified = FALSE`
	case medicine.NotifiedOnly:
		query += ` AND notified = TRUE`
	}
	query += ` ORDER BY expiry_date ASC`

	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("error listing expiring medicines: %w", err)
	}
	defer rows.Close()
	return scanMedicines(rows)
}

func (r *PostgresMedicineRepository) MarkNotified(ctx context.Context, ids []int64, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	query := `UPDATE medicines
               SET notified = TRUE, last_notification_date = $1, updated_at = NOW()
               WHERE id = ANY($2::bigint[])`
	if _, err := r.db.ExecContext(ctx, query, at, pq.Array(ids)); err != nil {
		return fmt.Errorf("error marking medicines notified: %w", err)
	}
	return nil
}

func (r *PostgresMedicineRepository) UpdateNotified(ctx context.Context, id int64, notified bool, at time.Time) error {
	query := `UPDATE medicines
               SET notified = $1, last_notification_date = $2, updated_at = NOW()
               WHERE id = $3
               RETURNING updated_at`

	var updatedAt time.Time
	err := r.db.QueryRowContext(ctx, query, notified, sql.NullTime{Time: at, Valid: true}, id).Scan(&updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrMedicineNotFound
		}
		return fmt.Errorf("error updating medicine notified state: %w", err)
	}
	return nil
}

// Helper to scan multiple rows
func scanMedicines(rows *sql.Rows) ([]*medicine.Medicine, error) {
	medicines := make([]*medicine.Medicine, 0)
	for rows.Next() {
		m := &medicine.Medicine{}
		if err := rows.Scan(
			&m.ID, &m.Name, &m.ExpiryDate, &m.Quantity, &m.BatchNumber,
			&m.Notified, &m.LastNotificationDate, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning medicine row: %w", err)
		}
		medicines = append(medicines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating medicine rows: %w", err)
	}
	return medicines, nil
}
