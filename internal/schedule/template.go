package schedule

import "time"

// Business-hour windows in minutes since midnight.
const (
	weekdayOpen  = 17 * 60
	weekdayClose = 23 * 60
	weekendOpen  = 9 * 60
	weekendClose = 19 * 60
)

// Template generates the ordered candidate slots for one date and duration.
// Slots are hourly-aligned, non-overlapping and contiguous; the last slot ends
// at or before closing time. Weekends follow the configured policy: either a
// separate 09:00-19:00 window or no slots at all. An invalid duration yields
// an empty template.
func Template(date time.Time, durationMinutes int, policy WeekendPolicy) []Slot {
	if !ValidDuration(durationMinutes) {
		return nil
	}

	open, close := weekdayOpen, weekdayClose
	if IsWeekend(date) {
		if policy == WeekendClosed {
			return nil
		}
		open, close = weekendOpen, weekendClose
	}

	var slots []Slot
	for start := open; start+durationMinutes <= close; start += durationMinutes {
		end := start + durationMinutes
		slots = append(slots, Slot{
			Start:    formatClock(start),
			End:      formatClock(end),
			StartMin: start,
			EndMin:   end,
		})
	}
	return slots
}
