package app

import (
	"database/sql"
	"strings"
	"testing"
	"time"

	"medicine_expiry_notifier/internal/domain/medicine"
	"medicine_expiry_notifier/internal/domain/notification"

	"github.com/stretchr/testify/require"
)

func testMedicine(id int64, name string, expiry time.Time) *medicine.Medicine {
	return &medicine.Medicine{
		ID:          id,
		Name:        name,
		ExpiryDate:  expiry,
		Quantity:    10,
		BatchNumber: sql.NullString{String: "B-001", Valid: true},
	}
}

func TestComposeSummary_Daily(t *testing.T) {
	now := time.Date(2025, 6, 8, 10, 0, 0, 0, time.UTC)
	meds := []*medicine.Medicine{
		testMedicine(1, "Ibuprofen", now.Add(48*time.Hour)),
		testMedicine(2, "Paracetamol", now.Add(120*time.Hour)),
	}

	got := composeSummary(notification.CadenceDaily, meds, now)

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "Medicines expiring this week:", lines[0])
	require.Equal(t, "- Ibuprofen: expires 10 Jun 2025 (2 days left)", lines[1])
	require.Equal(t, "- Paracetamol: expires 13 Jun 2025 (5 days left)", lines[2])
}

func TestComposeSummary_DailySingularDay(t *testing.T) {
	now := time.Date(2025, 6, 8, 10, 0, 0, 0, time.UTC)
	meds := []*medicine.Medicine{testMedicine(1, "Aspirin", now.Add(20*time.Hour))}

	got := composeSummary(notification.CadenceDaily, meds, now)
	require.Contains(t, got, "(1 day left)")
}

func TestComposeSummary_WeeklyAndMonthly(t *testing.T) {
	now := time.Date(2025, 6, 9, 10, 0, 0, 0, time.UTC)
	meds := []*medicine.Medicine{testMedicine(1, "Ibuprofen", now.Add(72*time.Hour))}

	weekly := composeSummary(notification.CadenceWeekly, meds, now)
	require.True(t, strings.HasPrefix(weekly, "Weekly summary of medicines expiring this week:\n"))
	require.Contains(t, weekly, "- Ibuprofen: expires 12 Jun 2025\n")
	require.NotContains(t, weekly, "left)")

	monthly := composeSummary(notification.CadenceMonthly, meds, now)
	require.True(t, strings.HasPrefix(monthly, "Monthly summary of medicines expiring this month:\n"))
	require.NotContains(t, monthly, "left)")
}

func TestComposeSummary_PreservesOrderAndIsDeterministic(t *testing.T) {
	now := time.Date(2025, 6, 8, 10, 0, 0, 0, time.UTC)
	meds := []*medicine.Medicine{
		testMedicine(3, "Cetirizine", now.Add(24*time.Hour)),
		testMedicine(1, "Ibuprofen", now.Add(48*time.Hour)),
		testMedicine(2, "Paracetamol", now.Add(96*time.Hour)),
	}

	first := composeSummary(notification.CadenceDaily, meds, now)
	second := composeSummary(notification.CadenceDaily, meds, now)
	require.Equal(t, first, second)

	require.Less(t, strings.Index(first, "Cetirizine"), strings.Index(first, "Ibuprofen"))
	require.Less(t, strings.Index(first, "Ibuprofen"), strings.Index(first, "Paracetamol"))
}

func TestEmailSubject(t *testing.T) {
	require.Equal(t, "Medicine Expiry Reminder", emailSubject(notification.CadenceDaily))
	require.Equal(t, "Weekly Medicine Expiry Summary", emailSubject(notification.CadenceWeekly))
	require.Equal(t, "Monthly Medicine Expiry Summary", emailSubject(notification.CadenceMonthly))
}
