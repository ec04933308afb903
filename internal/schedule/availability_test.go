package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arenaduna/booking-backend/internal/calendar"
)

func newTestEngine(unknown UnknownPolicy) *Engine {
	loc := time.FixedZone("BRT", -3*3600)
	return NewEngine(NewClassifier(DefaultRules()), loc, WeekendWindow, unknown)
}

// Thursday under the 17:00-23:00 weekday window.
var thursday = time.Date(2026, 1, 29, 0, 0, 0, 0, time.UTC)

func timedEvent(summary, start, end string) calendar.Event {
	return calendar.Event{
		ID:      "ev-" + start,
		Summary: summary,
		Start:   "2026-01-29T" + start + ":00-03:00",
		End:     "2026-01-29T" + end + ":00-03:00",
	}
}

func TestAvailabilityEmptyDay(t *testing.T) {
	e := newTestEngine(UnknownSingle)

	slots := e.Availability(thursday, 60, nil)
	require.Len(t, slots, 6)
	require.Equal(t, "17:00", slots[0].Start)
	require.Equal(t, "23:00", slots[5].End)
	for _, s := range slots {
		require.Equal(t, 2, s.AvailableCourts, "slot %s", s.Start)
	}
}

func TestAvailabilityAllDayEventBlocksEverything(t *testing.T) {
	e := newTestEngine(UnknownSingle)

	events := []calendar.Event{
		{ID: "all-day", Summary: "Feriado", Start: "2026-01-29", End: "2026-01-30", AllDay: true},
		timedEvent("quadra 1", "18:00", "19:00"),
	}

	for _, s := range e.Availability(thursday, 60, events) {
		require.Equal(t, 0, s.AvailableCourts, "slot %s", s.Start)
	}
}

func TestAvailabilityKnownSingleCourt(t *testing.T) {
	e := newTestEngine(UnknownSingle)

	events := []calendar.Event{
		timedEvent("Beach Tennis — Quadra 1", "18:00", "19:00"),
	}

	slots := e.Availability(thursday, 60, events)
	for _, s := range slots {
		if s.Start == "18:00" {
			require.Equal(t, 1, s.AvailableCourts)
		} else {
			require.Equal(t, 2, s.AvailableCourts, "slot %s", s.Start)
		}
	}
}

func TestAvailabilityBothCourtsKnownOccupied(t *testing.T) {
	e := newTestEngine(UnknownSingle)

	events := []calendar.Event{
		timedEvent("aula quadra 1", "18:00", "19:00"),
		timedEvent("treino quadra 2", "18:00", "19:00"),
	}

	slots := e.Availability(thursday, 60, events)
	for _, s := range slots {
		if s.Start == "18:00" {
			require.Equal(t, 0, s.AvailableCourts)
		} else {
			require.Equal(t, 2, s.AvailableCourts)
		}
	}
}

func TestAvailabilityBlockBothEvent(t *testing.T) {
	e := newTestEngine(UnknownSingle)

	events := []calendar.Event{
		timedEvent("manutenção quadra 1 e quadra 2", "19:00", "21:00"),
	}

	slots := e.Availability(thursday, 60, events)
	for _, s := range slots {
		switch s.Start {
		case "19:00", "20:00":
			require.Equal(t, 0, s.AvailableCourts)
		default:
			require.Equal(t, 2, s.AvailableCourts)
		}
	}
}

func TestAvailabilityUnknownEvents(t *testing.T) {
	e := newTestEngine(UnknownSingle)

	t.Run("one unknown leaves one court", func(t *testing.T) {
		events := []calendar.Event{timedEvent("festa particular", "18:00", "19:00")}
		slots := e.Availability(thursday, 60, events)
		require.Equal(t, 1, slotAt(t, slots, "18:00").AvailableCourts)
	})

	t.Run("two unknowns exhaust capacity", func(t *testing.T) {
		events := []calendar.Event{
			timedEvent("festa particular", "18:00", "19:00"),
			{ID: "other", Summary: "evento corporativo", Start: "2026-01-29T18:00:00-03:00", End: "2026-01-29T19:00:00-03:00"},
		}
		slots := e.Availability(thursday, 60, events)
		require.Equal(t, 0, slotAt(t, slots, "18:00").AvailableCourts)
	})

	t.Run("unknown plus known court consumes the remainder", func(t *testing.T) {
		events := []calendar.Event{
			timedEvent("festa particular", "18:00", "19:00"),
			timedEvent("aula quadra 1", "18:00", "19:00"),
		}
		slots := e.Availability(thursday, 60, events)
		require.Equal(t, 0, slotAt(t, slots, "18:00").AvailableCourts)
	})

	t.Run("three unknowns never go negative", func(t *testing.T) {
		events := []calendar.Event{
			timedEvent("festa um", "18:00", "19:00"),
			timedEvent("festa dois", "18:00", "19:00"),
			timedEvent("festa tres", "18:00", "19:00"),
		}
		slots := e.Availability(thursday, 60, events)
		require.Equal(t, 0, slotAt(t, slots, "18:00").AvailableCourts)
	})
}

func TestAvailabilityLegacyUnknownBlockPolicy(t *testing.T) {
	e := newTestEngine(UnknownBlock)

	events := []calendar.Event{timedEvent("festa particular", "18:00", "19:00")}
	slots := e.Availability(thursday, 60, events)
	require.Equal(t, 0, slotAt(t, slots, "18:00").AvailableCourts)
	require.Equal(t, 2, slotAt(t, slots, "19:00").AvailableCourts)
}

func TestAvailabilityUTCEncodedEvent(t *testing.T) {
	// 21:00Z is 18:00 venue wall clock under the fixed -03:00 zone.
	e := newTestEngine(UnknownSingle)

	events := []calendar.Event{
		{ID: "utc", Summary: "quadra 1", Start: "2026-01-29T21:00:00Z", End: "2026-01-29T22:00:00Z"},
	}
	slots := e.Availability(thursday, 60, events)
	require.Equal(t, 1, slotAt(t, slots, "18:00").AvailableCourts)
	require.Equal(t, 2, slotAt(t, slots, "17:00").AvailableCourts)
}

func TestAvailabilityEventEndingAtMidnight(t *testing.T) {
	e := newTestEngine(UnknownSingle)

	events := []calendar.Event{
		{
			ID:      "late",
			Summary: "quadra 1",
			Start:   "2026-01-29T22:00:00-03:00",
			End:     "2026-01-30T00:00:00-03:00",
		},
	}

	slots := e.Availability(thursday, 60, events)
	require.Equal(t, 1, slotAt(t, slots, "22:00").AvailableCourts)
	require.Equal(t, 2, slotAt(t, slots, "21:00").AvailableCourts)
}

func TestAvailabilityIsPure(t *testing.T) {
	e := newTestEngine(UnknownSingle)

	events := []calendar.Event{
		timedEvent("Beach Tennis — Quadra 1", "18:00", "19:00"),
		timedEvent("festa particular", "20:00", "21:00"),
	}

	first := e.Availability(thursday, 60, events)
	second := e.Availability(thursday, 60, events)
	require.Equal(t, first, second)
}

func slotAt(t *testing.T, slots []Slot, start string) Slot {
	t.Helper()
	for _, s := range slots {
		if s.Start == start {
			return s
		}
	}
	t.Fatalf("no slot starting at %s", start)
	return Slot{}
}
