package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(h, m int) time.Time {
	return time.Date(2025, 6, 2, h, m, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name           string
		s1, e1, s2, e2 time.Time
		want           bool
	}{
		{"identical", at(9, 0), at(9, 30), at(9, 0), at(9, 30), true},
		{"partial overlap", at(9, 0), at(9, 30), at(9, 15), at(9, 45), true},
		{"contained", at(9, 0), at(10, 0), at(9, 15), at(9, 30), true},
		{"touching endpoints", at(9, 0), at(9, 30), at(9, 30), at(10, 0), false},
		{"touching reversed", at(9, 30), at(10, 0), at(9, 0), at(9, 30), false},
		{"disjoint", at(9, 0), at(9, 30), at(11, 0), at(11, 30), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.s1, tt.e1, tt.s2, tt.e2))
			// Overlap is symmetric.
			assert.Equal(t, tt.want, Overlaps(tt.s2, tt.e2, tt.s1, tt.e1))
		})
	}
}

func TestIntervalConflicts(t *testing.T) {
	busy := Interval{Start: at(9, 0), End: at(9, 30)}

	assert.True(t, busy.Conflicts(at(9, 15), at(9, 45)))
	assert.False(t, busy.Conflicts(at(9, 30), at(10, 0)))
}
