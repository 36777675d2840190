package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWithinWindow(t *testing.T) {
	day := func(h, m, s int) time.Time {
		return time.Date(2025, 6, 10, h, m, s, 0, time.UTC)
	}

	cases := []struct {
		name   string
		now    time.Time
		target string
		want   bool
	}{
		{"exact match", day(10, 0, 0), "10:00", true},
		{"one minute after", day(10, 1, 0), "10:00", true},
		{"one minute before", day(9, 59, 0), "10:00", true},
		{"ninety seconds after", day(10, 1, 30), "10:00", false},
		{"two minutes after", day(10, 2, 0), "10:00", false},
		{"hours away", day(14, 30, 0), "10:00", false},
		{"midnight target checked late evening", day(23, 59, 0), "00:00", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := withinWindow(tc.now, tc.target)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}

	t.Run("invalid target format", func(t *testing.T) {
		_, err := withinWindow(day(10, 0, 0), "25:99")
		require.Error(t, err)
		_, err = withinWindow(day(10, 0, 0), "soon")
		require.Error(t, err)
	})
}

func TestCadencePredicates(t *testing.T) {
	monday := time.Date(2025, 6, 9, 10, 0, 0, 0, time.UTC)
	require.Equal(t, time.Monday, monday.Weekday())
	require.True(t, isWeeklyDay(monday))
	require.False(t, isWeeklyDay(monday.AddDate(0, 0, 1)))
	require.False(t, isWeeklyDay(monday.AddDate(0, 0, -1)))

	first := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	require.True(t, isMonthlyDay(first))
	require.False(t, isMonthlyDay(first.AddDate(0, 0, 14)))
	require.False(t, isMonthlyDay(first.AddDate(0, 0, -1))) // 31st of May
}

func TestEndOfWeek(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			"wednesday runs to coming saturday",
			time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 7, 23, 59, 59, 0, time.UTC),
		},
		{
			"sunday starts a fresh week",
			time.Date(2025, 6, 8, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 14, 23, 59, 59, 0, time.UTC),
		},
		{
			"saturday ends the same day",
			time.Date(2025, 6, 7, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 7, 23, 59, 59, 0, time.UTC),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, endOfWeek(tc.now))
		})
	}
}

func TestEndOfMonth(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			"mid january",
			time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC),
		},
		{
			"february in a leap year",
			time.Date(2024, 2, 10, 10, 0, 0, 0, time.UTC),
			time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC),
		},
		{
			"december rolls within the year",
			time.Date(2025, 12, 5, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, endOfMonth(tc.now))
		})
	}
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)

	require.Equal(t, 2, daysUntil(now, now.Add(48*time.Hour)))
	require.Equal(t, 3, daysUntil(now, now.Add(60*time.Hour))) // started day counts
	require.Equal(t, 1, daysUntil(now, now.Add(time.Hour)))
	require.Equal(t, 0, daysUntil(now, now))
	require.Equal(t, 0, daysUntil(now, now.Add(-24*time.Hour)))
}
