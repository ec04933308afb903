package schedule

import (
	"regexp"
	"strconv"
	"time"
)

const minutesPerDay = 24 * 60

var (
	// Timestamp with an explicit numeric UTC offset, e.g. "...T18:00:00-03:00".
	// The hour/minute digits already express local wall-clock time.
	offsetTimestampRe = regexp.MustCompile(`T(\d{2}):(\d{2}).*[+-]\d{2}:?\d{2}$`)
	// Permissive fallback: first HH:MM anywhere in the string.
	clockRe = regexp.MustCompile(`(\d{1,2}):(\d{2})`)
)

// MinuteOfDay converts a calendar timestamp string to minutes since local
// midnight in loc. Timestamps carrying an explicit numeric offset are read
// digit-for-digit, since the offset already reflects the venue wall clock.
// UTC ("Z") and offset-less timestamps are converted through loc. Malformed
// input falls back to the first HH:MM pattern found, then to minute 0.
func MinuteOfDay(ts string, loc *time.Location) int {
	if m := offsetTimestampRe.FindStringSubmatch(ts); m != nil {
		h, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		return h*60 + min
	}
	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		local := t.In(loc)
		return local.Hour()*60 + local.Minute()
	}
	if t, err := time.Parse("2006-01-02T15:04:05", ts); err == nil {
		local := t.In(loc)
		return local.Hour()*60 + local.Minute()
	}
	if m := clockRe.FindStringSubmatch(ts); m != nil {
		h, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		return h*60 + min
	}
	return 0
}

// Overlaps reports whether the half-open minute intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Zero-length and back-to-back intervals never
// overlap.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// IsWeekend reports whether date falls on Saturday or Sunday. The day of week
// is taken at noon UTC so timezone conversion can never shift the date.
func IsWeekend(date time.Time) bool {
	noon := time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, time.UTC)
	wd := noon.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
