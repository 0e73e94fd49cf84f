package schedule

import "time"

// Overlaps reports whether the half-open intervals [s1, e1) and [s2, e2)
// intersect. Touching endpoints (e1 == s2) do not conflict.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// Interval is a busy window taken by an existing appointment.
type Interval struct {
	Start time.Time
	End   time.Time
}

func (i Interval) Conflicts(start, end time.Time) bool {
	return Overlaps(start, end, i.Start, i.End)
}
