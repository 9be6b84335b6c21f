// Package timeutil provides time formatting utilities for CLI output.
package timeutil

import (
	"fmt"
	"time"
)

// LocalTimeFormat is the format used for displaying local times in CLI output.
// Uses Go's reference time: Mon Jan 2 15:04:05 2006.
const LocalTimeFormat = "Mon Jan 2 15:04:05 2006"

// FormatTime renders a timestamp as a local time string.
func FormatTime(t time.Time) string {
	return t.Local().Format(LocalTimeFormat)
}

// FormatTimePtr renders an optional timestamp, falling back to "-" when nil.
func FormatTimePtr(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return FormatTime(*t)
}

// FormatDuration converts a duration to a human-readable string like
// "3d 0h 30m 15s". Sub-second durations render as "0s".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = -d
	}

	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}

// Ago renders how long ago a timestamp was, like "2h 13m 5s ago".
func Ago(t time.Time) string {
	return FormatDuration(time.Since(t)) + " ago"
}
