package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMinuteOfDay(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)

	tests := []struct {
		name string
		ts   string
		want int
	}{
		{
			// Explicit offset: digits are read as-is, never reinterpreted.
			name: "explicit negative offset",
			ts:   "2026-01-29T18:00:00-03:00",
			want: 18 * 60,
		},
		{
			name: "explicit positive offset",
			ts:   "2026-01-29T09:30:00+02:00",
			want: 9*60 + 30,
		},
		{
			// UTC marker: converted into the venue timezone.
			name: "utc z marker",
			ts:   "2026-01-29T21:00:00Z",
			want: 18 * 60,
		},
		{
			name: "no offset treated as utc",
			ts:   "2026-01-29T21:15:00",
			want: 18*60 + 15,
		},
		{
			name: "malformed falls back to first clock pattern",
			ts:   "starts around 18:30 maybe",
			want: 18*60 + 30,
		},
		{
			name: "no clock pattern at all",
			ts:   "sometime in the evening",
			want: 0,
		},
		{
			name: "empty",
			ts:   "",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, MinuteOfDay(tt.ts, loc))
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{"identical", 60, 120, 60, 120, true},
		{"partial overlap", 60, 120, 90, 150, true},
		{"contained", 60, 180, 90, 120, true},
		{"back to back", 60, 120, 120, 180, false},
		{"disjoint", 60, 120, 180, 240, false},
		{"zero length never overlaps", 60, 60, 0, 1440, false},
		{"symmetric back to back", 120, 180, 60, 120, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			require.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}
