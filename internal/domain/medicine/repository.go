package medicine

import (
	"context"
	"time"
)

// NotifiedFilter narrows an expiring-medicines query by the notified flag.
type NotifiedFilter int

const (
	NotifiedAny NotifiedFilter = iota
	NotifiedOnly
	NotNotifiedOnly
)

// Repository defines the operations for persisting and retrieving Medicine records.
type Repository interface {
	Create(ctx context.Context, m *Medicine) error
	GetByID(ctx context.Context, id int64) (*Medicine, error)
	ListAll(ctx context.Context) ([]*Medicine, error)

	// ListExpiringBetween returns medicines whose expiry date falls within
	// [start, end], ordered ascending by expiry date (soonest first).
	ListExpiringBetween(ctx context.Context, start, end time.Time, filter NotifiedFilter) ([]*Medicine, error)

	// MarkNotified sets notified=true and stamps last_notification_date for
	// every medicine in ids.
	MarkNotified(ctx context.Context, ids []int64, at time.Time) error

	// UpdateNotified sets the notified flag and stamps the notification time
	// for a single medicine.
	UpdateNotified(ctx context.Context, id int64, notified bool, at time.Time) error
}
