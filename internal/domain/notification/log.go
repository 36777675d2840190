package notification

import (
	"database/sql"
	"time"
)

// LogEntry is one immutable record of a delivery attempt: one entry per
// (medicine, cadence, channel, attempt). Entries are never mutated or
// deleted. For consolidated sends the medicine ID is the representative
// (soonest-expiring) medicine of the batch.
type LogEntry struct {
	ID          int64
	MedicineID  int64
	Cadence     CadenceType
	Channel     Channel
	Status      DeliveryStatus
	Message     string
	Recipient   sql.NullString // Intended email address; unset for push
	ErrorDetail sql.NullString
	CreatedAt   time.Time
}
