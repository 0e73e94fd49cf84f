package schedule

import (
	"sort"
	"time"

	"github.com/barberbook/barberbook-api/internal/models"
)

// SlotStep is the fixed grid on which slot candidates are offered. It is
// deliberately independent of the service duration: a 45-minute cut is
// still offered every 15 minutes.
const SlotStep = 15 * time.Minute

// Slot is one candidate start time on the grid. Available is false when the
// would-be appointment overlaps an existing pending or confirmed one.
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// BuildSlots walks every availability range for the day on the SlotStep grid
// and marks each candidate against the busy intervals. Candidates exist while
// cur+step fits inside the range; the service itself may run past the range
// end. Such overrun slots are still emitted and bookable: client UIs rely on
// the full grid, so this stays until the product decides otherwise.
//
// Malformed ranges (unparseable times, start >= end) contribute no slots.
// Output is ordered by time ascending.
func BuildSlots(
	date time.Time,
	ranges []models.AvailabilityRange,
	duration time.Duration,
	busy []Interval,
) []Slot {

	type candidate struct {
		at        time.Time
		available bool
	}

	var candidates []candidate

	for _, r := range ranges {
		rangeStart, err := AtClock(date, r.StartTime)
		if err != nil {
			continue
		}
		rangeEnd, err := AtClock(date, r.EndTime)
		if err != nil {
			continue
		}

		for cur := rangeStart; !cur.Add(SlotStep).After(rangeEnd); cur = cur.Add(SlotStep) {
			slotEnd := cur.Add(duration)

			available := true
			for _, b := range busy {
				if b.Conflicts(cur, slotEnd) {
					available = false
					break
				}
			}

			candidates = append(candidates, candidate{at: cur, available: available})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].at.Before(candidates[j].at)
	})

	slots := make([]Slot, 0, len(candidates))
	for _, c := range candidates {
		slots = append(slots, Slot{
			Time:      c.at.Format("15:04"),
			Available: c.available,
		})
	}
	return slots
}
