package settings

import "context"

// Repository defines the operations for the notification settings record.
type Repository interface {
	// GetLatest returns the most recently updated settings record. Absence
	// of any record is a legitimate "nothing configured" state and is
	// reported with a sentinel error.
	GetLatest(ctx context.Context) (*Settings, error)
	Save(ctx context.Context, s *Settings) error
}
