package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberbook/barberbook-api/internal/models"
)

// 2025-06-02 is a Monday, 2025-06-01 a Sunday.
var (
	monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	sunday = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
)

func TestRangesFor(t *testing.T) {
	availability := []models.AvailabilityRange{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
		{DayOfWeek: 1, StartTime: "14:00", EndTime: "18:00"},
		{DayOfWeek: 3, StartTime: "10:00", EndTime: "16:00"},
	}

	t.Run("matches weekday, unmerged and in order", func(t *testing.T) {
		got := RangesFor(availability, monday)
		require.Len(t, got, 2)
		assert.Equal(t, "09:00", got[0].StartTime)
		assert.Equal(t, "14:00", got[1].StartTime)
	})

	t.Run("no entry means day off", func(t *testing.T) {
		assert.Empty(t, RangesFor(availability, sunday))
	})

	t.Run("sunday is zero", func(t *testing.T) {
		got := RangesFor([]models.AvailabilityRange{
			{DayOfWeek: 0, StartTime: "10:00", EndTime: "11:00"},
		}, sunday)
		assert.Len(t, got, 1)
	})
}

func TestAtClock(t *testing.T) {
	got, err := AtClock(monday, "09:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC), got)

	_, err = AtClock(monday, "9am")
	assert.Error(t, err)
}

func TestStartWithin(t *testing.T) {
	ranges := []models.AvailabilityRange{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
	}

	start := func(h, m int) time.Time {
		return time.Date(2025, 6, 2, h, m, 0, 0, time.UTC)
	}

	assert.True(t, StartWithin(monday, ranges, start(9, 0)))
	assert.True(t, StartWithin(monday, ranges, start(11, 45)))
	assert.False(t, StartWithin(monday, ranges, start(8, 45)))
	assert.False(t, StartWithin(monday, ranges, start(12, 0)))
	// A start too close to the range end never appears on the grid.
	assert.False(t, StartWithin(monday, ranges, start(11, 50)))

	t.Run("malformed range yields nothing", func(t *testing.T) {
		bad := []models.AvailabilityRange{
			{DayOfWeek: 1, StartTime: "garbage", EndTime: "12:00"},
		}
		assert.False(t, StartWithin(monday, bad, start(9, 0)))
	})
}

func TestDayBounds(t *testing.T) {
	dayStart, dayEnd := DayBounds(time.Date(2025, 6, 2, 13, 45, 0, 0, time.UTC))
	assert.Equal(t, monday, dayStart)
	assert.Equal(t, monday.Add(24*time.Hour), dayEnd)
}
