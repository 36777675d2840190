package notification

import "context"

// LogRepository defines the append-only persistence surface for delivery
// attempt records.
type LogRepository interface {
	Append(ctx context.Context, entry *LogEntry) error
	ListByMedicine(ctx context.Context, medicineID int64) ([]*LogEntry, error)
}
