package medicine

import (
	"database/sql"
	"time"
)

// Medicine represents a tracked inventory item.
type Medicine struct {
	ID                   int64
	Name                 string
	ExpiryDate           time.Time
	Quantity             int
	BatchNumber          sql.NullString // Optional, not every stock entry carries one
	Notified             bool
	LastNotificationDate sql.NullTime
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
