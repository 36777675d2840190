package app

import (
	"fmt"
	"time"
)

// checkWindow is the tolerance around the configured target time within
// which a scheduled check cycle is allowed to proceed.
const checkWindow = time.Minute

// withinWindow reports whether now falls within checkWindow of today's
// target instant. The target "HH:MM" is resolved against now's date only,
// so a target shortly after midnight is never matched from the evening
// before.
func withinWindow(now time.Time, target string) (bool, error) {
	parsed, err := time.Parse("15:04", target)
	if err != nil {
		return false, fmt.Errorf("invalid notification time %q: %w", target, err)
	}
	instant := time.Date(now.Year(), now.Month(), now.Day(), parsed.Hour(), parsed.Minute(), 0, 0, now.Location())
	diff := now.Sub(instant)
	if diff < 0 {
		diff = -diff
	}
	return diff <= checkWindow, nil
}

// isWeeklyDay reports whether the weekly cadence applies: Monday, index 1
// in a Sunday=0 week.
func isWeeklyDay(now time.Time) bool {
	return now.Weekday() == time.Monday
}

// isMonthlyDay reports whether the monthly cadence applies: the 1st
// calendar day of the month.
func isMonthlyDay(now time.Time) bool {
	return now.Day() == 1
}

// endOfWeek returns the last instant of the current Sunday-based week,
// i.e. the coming Saturday at 23:59:59.
func endOfWeek(now time.Time) time.Time {
	saturday := now.AddDate(0, 0, 6-int(now.Weekday()))
	return time.Date(saturday.Year(), saturday.Month(), saturday.Day(), 23, 59, 59, 0, now.Location())
}

// endOfMonth returns the last instant of the current month.
func endOfMonth(now time.Time) time.Time {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(now.Year(), now.Month()+1, 0, 23, 59, 59, 0, now.Location())
}

// daysUntil returns the number of whole or started days between now and
// expiry, never negative.
func daysUntil(now, expiry time.Time) int {
	d := expiry.Sub(now)
	if d <= 0 {
		return 0
	}
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	return days
}
