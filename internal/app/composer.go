package app

import (
	"fmt"
	"strings"
	"time"

	"medicine_expiry_notifier/internal/domain/medicine"
	"medicine_expiry_notifier/internal/domain/notification"
)

const expiryDateLayout = "02 Jan 2006"

// composeSummary renders the consolidated plain-text summary for one
// cadence: a header line naming the cadence, then one line per medicine in
// the order given (callers pass them soonest-expiring first). The daily
// cadence additionally shows how many days remain. The result is used
// verbatim as the push payload and wrapped in an HTML template for email.
func composeSummary(cadence notification.CadenceType, meds []*medicine.Medicine, now time.Time) string {
	var b strings.Builder
	switch cadence {
	case notification.CadenceDaily:
		b.WriteString("Medicines expiring this week:\n")
	case notification.CadenceWeekly:
		b.WriteString("Weekly summary of medicines expiring this week:\n")
	case notification.CadenceMonthly:
		b.WriteString("Monthly summary of medicines expiring this month:\n")
	}

	for _, m := range meds {
		if cadence == notification.CadenceDaily {
			days := daysUntil(now, m.ExpiryDate)
			unit := "days"
			if days == 1 {
				unit = "day"
			}
			fmt.Fprintf(&b, "- %s: expires %s (%d %s left)\n", m.Name, m.ExpiryDate.Format(expiryDateLayout), days, unit)
		} else {
			fmt.Fprintf(&b, "- %s: expires %s\n", m.Name, m.ExpiryDate.Format(expiryDateLayout))
		}
	}
	return b.String()
}

// emailSubject returns the subject line used for a cadence's email.
func emailSubject(cadence notification.CadenceType) string {
	switch cadence {
	case notification.CadenceWeekly:
		return "Weekly Medicine Expiry Summary"
	case notification.CadenceMonthly:
		return "Monthly Medicine Expiry Summary"
	default:
		return "Medicine Expiry Reminder"
	}
}
