package schedule

import (
	"time"

	"github.com/arenaduna/booking-backend/internal/calendar"
)

// Engine combines the slot template with classified events to compute
// per-slot free-court counts. It is a pure function of its inputs: the same
// event list and duration always yield the same output.
type Engine struct {
	classifier    *Classifier
	loc           *time.Location
	weekendPolicy WeekendPolicy
	unknownPolicy UnknownPolicy
}

// NewEngine builds an availability engine for the venue timezone with the
// given classifier and policies.
func NewEngine(classifier *Classifier, loc *time.Location, weekend WeekendPolicy, unknown UnknownPolicy) *Engine {
	return &Engine{
		classifier:    classifier,
		loc:           loc,
		weekendPolicy: weekend,
		unknownPolicy: unknown,
	}
}

// Location returns the venue timezone.
func (e *Engine) Location() *time.Location {
	return e.loc
}

// UnknownPolicy returns the configured unknown-event policy.
func (e *Engine) UnknownPolicy() UnknownPolicy {
	return e.unknownPolicy
}

// SlotsFor generates the candidate slot template for date and duration.
func (e *Engine) SlotsFor(date time.Time, durationMinutes int) []Slot {
	return Template(date, durationMinutes, e.weekendPolicy)
}

// Availability annotates the slot template with the number of free courts per
// slot, given the full list of the day's raw events.
func (e *Engine) Availability(date time.Time, durationMinutes int, events []calendar.Event) []Slot {
	slots := e.SlotsFor(date, durationMinutes)
	for i := range slots {
		occ := e.SlotOccupancy(slots[i], events)
		slots[i].AvailableCourts = occ.FreeCourts(e.unknownPolicy)
	}
	return slots
}

// SlotOccupancy accumulates the classified load of all events overlapping one
// slot. All-day events and events naming both courts short-circuit: they
// always win over partial information.
func (e *Engine) SlotOccupancy(slot Slot, events []calendar.Event) Occupancy {
	var occ Occupancy
	for _, ev := range events {
		if ev.AllDay {
			// Date-only bounds occupy the entire day.
			occ.AllDay = true
			return occ
		}

		startMin := MinuteOfDay(ev.Start, e.loc)
		endMin := MinuteOfDay(ev.End, e.loc)
		if endMin == 0 && startMin > 0 {
			// An end at local midnight closes the day rather than opening it.
			endMin = minutesPerDay
		}
		if !Overlaps(slot.StartMin, slot.EndMin, startMin, endMin) {
			continue
		}

		verdict := e.classifier.Classify(ev.Summary, ev.Description, ev.Location)
		if verdict.BlockBoth {
			occ.BlockBoth = true
			for _, court := range verdict.Courts {
				occ.MarkKnown(court)
			}
			return occ
		}
		if verdict.Unknown {
			occ.Unknown++
			continue
		}
		for _, court := range verdict.Courts {
			occ.MarkKnown(court)
		}
	}
	return occ
}
