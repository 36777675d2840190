package settings

import "time"

// Settings holds the notification configuration. The record whose updated_at
// is most recent is the authoritative one; it may be mutated externally at
// any time, so readers always fetch fresh.
type Settings struct {
	ID               int64
	EmailEnabled     bool
	PushEnabled      bool
	DailyEnabled     bool
	WeeklyEnabled    bool
	MonthlyEnabled   bool
	NotificationTime string // Target time of day in "HH:MM", local time
	Email            string
	PushEndpoint     string
	PushP256dh       string
	PushAuth         string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
