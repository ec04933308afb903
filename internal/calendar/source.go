package calendar

import (
	"context"
	"time"
)

// EventSource is the external calendar collaborator. Listing returns events
// strictly within the requested window, recurring instances materialized,
// ordered by start time.
type EventSource interface {
	// ListDay returns the events for one calendar day in the venue timezone.
	ListDay(ctx context.Context, day time.Time) ([]Event, error)
	// ListRange returns the events between from and to.
	ListRange(ctx context.Context, from, to time.Time) ([]Event, error)
	// Insert creates an event and returns its identifier.
	Insert(ctx context.Context, in EventInput) (string, error)
	// Get fetches a single event by identifier.
	Get(ctx context.Context, id string) (*Event, error)
	// Delete removes an event by identifier.
	Delete(ctx context.Context, id string) error
}
