package schedule

import (
	"time"

	"github.com/barberbook/barberbook-api/internal/models"
)

// RangesFor returns the availability entries that apply to the given date,
// matching on weekday (Sunday=0 .. Saturday=6). A day with no entries means
// the barber is off: empty result, never an error. Entries are returned in
// stored order and are NOT merged, a day may carry several ranges
// (morning + afternoon).
func RangesFor(availability []models.AvailabilityRange, date time.Time) []models.AvailabilityRange {
	weekday := int(date.Weekday())

	var out []models.AvailabilityRange
	for _, r := range availability {
		if r.DayOfWeek == weekday {
			out = append(out, r)
		}
	}
	return out
}

// AtClock resolves an "HH:MM" wall-clock string onto the given date's day
// and location.
func AtClock(date time.Time, hm string) (time.Time, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	), nil
}

// StartWithin reports whether a booking start falls inside one of the day's
// ranges with at least one grid step left before the range end, i.e. the
// same rule that makes a candidate appear on the slot grid. The appointment
// end may still overrun the range, matching BuildSlots.
func StartWithin(date time.Time, ranges []models.AvailabilityRange, start time.Time) bool {
	for _, r := range ranges {
		rangeStart, err := AtClock(date, r.StartTime)
		if err != nil {
			continue
		}
		rangeEnd, err := AtClock(date, r.EndTime)
		if err != nil {
			continue
		}

		if !start.Before(rangeStart) && !start.Add(SlotStep).After(rangeEnd) {
			return true
		}
	}
	return false
}

// DayBounds returns midnight of the date and midnight of the following day,
// in the date's location.
func DayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.Add(24 * time.Hour)
}
