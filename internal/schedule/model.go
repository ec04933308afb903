package schedule

import "fmt"

// NumCourts is fixed for the venue: two numbered courts, 1 and 2.
const NumCourts = 2

// Allowed reservation durations in minutes.
const (
	DurationShort = 60
	DurationLong  = 120
)

// ValidDuration reports whether d is one of the two bookable durations.
func ValidDuration(d int) bool {
	return d == DurationShort || d == DurationLong
}

// WeekendPolicy selects how weekend days are templated.
type WeekendPolicy string

const (
	// WeekendWindow uses a separate 09:00-19:00 weekend window.
	WeekendWindow WeekendPolicy = "window"
	// WeekendClosed generates no slots at all on weekends.
	WeekendClosed WeekendPolicy = "closed"
)

// UnknownPolicy selects how events without a recognizable court are counted.
type UnknownPolicy string

const (
	// UnknownSingle counts each unattributed event as one unit of occupancy.
	UnknownSingle UnknownPolicy = "single"
	// UnknownBlock is the legacy behavior: any unattributed event blocks both courts.
	UnknownBlock UnknownPolicy = "block"
)

// Slot is a half-open candidate reservation window [Start, End) within
// business hours. Minute fields are minutes since local midnight.
type Slot struct {
	Start           string
	End             string
	StartMin        int
	EndMin          int
	AvailableCourts int
}

// RuleConfig is one externally configurable classification rule: events whose
// text matches Pattern are attributed to Court.
type RuleConfig struct {
	Pattern string `mapstructure:"pattern" json:"pattern"`
	Court   int    `mapstructure:"court" json:"court"`
}

// Verdict is the classification result for a single event.
type Verdict struct {
	Courts    []int // known occupied courts, subset of {1, 2}
	BlockBoth bool  // event names both courts and blocks the whole venue
	Unknown   bool  // occupies exactly one court, identity undetermined
}

// Occupancy accumulates the classified load on one slot.
type Occupancy struct {
	AllDay    bool
	BlockBoth bool
	Unknown   int
	known     [NumCourts]bool
}

// MarkKnown records court (1-based) as definitively occupied.
func (o *Occupancy) MarkKnown(court int) {
	if court >= 1 && court <= NumCourts {
		o.known[court-1] = true
	}
}

// KnownOccupied reports whether court (1-based) is definitively occupied.
func (o *Occupancy) KnownOccupied(court int) bool {
	return court >= 1 && court <= NumCourts && o.known[court-1]
}

// KnownCount returns the number of definitively occupied courts.
func (o *Occupancy) KnownCount() int {
	n := 0
	for _, taken := range o.known {
		if taken {
			n++
		}
	}
	return n
}

// FreeCourts computes the number of courts still available under the given
// unknown-event policy. Unattributed events consume remaining capacity one
// unit each, never pushing the result below zero.
func (o *Occupancy) FreeCourts(policy UnknownPolicy) int {
	if o.AllDay || o.BlockBoth {
		return 0
	}
	if policy == UnknownBlock && o.Unknown > 0 {
		return 0
	}
	remaining := NumCourts - o.KnownCount()
	if remaining < 0 {
		remaining = 0
	}
	claimed := o.Unknown
	if claimed > remaining {
		claimed = remaining
	}
	return remaining - claimed
}

func formatClock(minuteOfDay int) string {
	return fmt.Sprintf("%02d:%02d", minuteOfDay/60, minuteOfDay%60)
}
