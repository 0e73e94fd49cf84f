package handlers

import (
	"time"

	"github.com/barberbook/barberbook-api/internal/timezone"
)

// Dates and times arrive as "YYYY-MM-DD" / "HH:MM" strings and are resolved
// in the configured shop timezone.

func parseDate(tz string, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(tz),
	)
}

func parseDateTime(tz string, dateStr string, timeStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02 15:04",
		dateStr+" "+timeStr,
		timezone.Location(tz),
	)
}
