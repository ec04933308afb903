package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIsWeekend(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"thursday", time.Date(2026, 1, 29, 0, 0, 0, 0, time.UTC), false},
		{"friday", time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC), false},
		{"saturday", time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), true},
		{"sunday", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), true},
		{"monday", time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsWeekend(tt.date))
		})
	}
}

func TestIsWeekendIgnoresLocationMidnight(t *testing.T) {
	// Saturday midnight in a UTC-3 zone is still Friday 03:00 in UTC terms if
	// converted naively; the noon-UTC anchor must keep it a Saturday.
	loc := time.FixedZone("BRT", -3*3600)
	date := time.Date(2026, 1, 31, 0, 0, 0, 0, loc)
	require.True(t, IsWeekend(date))
}

func TestTemplateWeekday(t *testing.T) {
	thursday := time.Date(2026, 1, 29, 0, 0, 0, 0, time.UTC)

	slots := Template(thursday, 60, WeekendWindow)
	require.Len(t, slots, 6)
	require.Equal(t, "17:00", slots[0].Start)
	require.Equal(t, "18:00", slots[0].End)
	require.Equal(t, "22:00", slots[5].Start)
	require.Equal(t, "23:00", slots[5].End)

	for i := 1; i < len(slots); i++ {
		require.Equal(t, slots[i-1].EndMin, slots[i].StartMin, "slots must be contiguous")
	}
}

func TestTemplateWeekdayLongDuration(t *testing.T) {
	thursday := time.Date(2026, 1, 29, 0, 0, 0, 0, time.UTC)

	slots := Template(thursday, 120, WeekendWindow)
	require.Len(t, slots, 3)
	require.Equal(t, "17:00", slots[0].Start)
	require.Equal(t, "19:00", slots[0].End)
	require.Equal(t, "21:00", slots[2].Start)
	require.Equal(t, "23:00", slots[2].End)
}

func TestTemplateWeekendWindow(t *testing.T) {
	saturday := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	slots := Template(saturday, 60, WeekendWindow)
	require.Len(t, slots, 10)
	require.Equal(t, "09:00", slots[0].Start)
	require.Equal(t, "19:00", slots[9].End)
}

func TestTemplateWeekendClosed(t *testing.T) {
	saturday := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	require.Empty(t, Template(saturday, 60, WeekendClosed))

	// Weekdays are unaffected by the weekend policy.
	thursday := time.Date(2026, 1, 29, 0, 0, 0, 0, time.UTC)
	require.Len(t, Template(thursday, 60, WeekendClosed), 6)
}

func TestTemplateInvalidDuration(t *testing.T) {
	thursday := time.Date(2026, 1, 29, 0, 0, 0, 0, time.UTC)
	require.Empty(t, Template(thursday, 90, WeekendWindow))
	require.Empty(t, Template(thursday, 0, WeekendWindow))
}
