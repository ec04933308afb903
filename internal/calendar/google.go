package calendar

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleSource implements EventSource against the Google Calendar API using a
// service account.
type GoogleSource struct {
	svc        *gcal.Service
	calendarID string
	loc        *time.Location
}

// NewGoogleSource parses the service-account credentials JSON and builds an
// authorized calendar client.
func NewGoogleSource(ctx context.Context, credentialsJSON []byte, calendarID string, loc *time.Location) (*GoogleSource, error) {
	conf, err := google.JWTConfigFromJSON(credentialsJSON, gcal.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
	}

	svc, err := gcal.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	return &GoogleSource{
		svc:        svc,
		calendarID: calendarID,
		loc:        loc,
	}, nil
}

func (g *GoogleSource) ListDay(ctx context.Context, day time.Time) ([]Event, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, g.loc)
	return g.ListRange(ctx, from, from.AddDate(0, 0, 1))
}

func (g *GoogleSource) ListRange(ctx context.Context, from, to time.Time) ([]Event, error) {
	call := g.svc.Events.List(g.calendarID).
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		MaxResults(250).
		Context(ctx)

	res, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	events := make([]Event, 0, len(res.Items))
	for _, item := range res.Items {
		events = append(events, fromGoogleEvent(item))
	}
	return events, nil
}

func (g *GoogleSource) Insert(ctx context.Context, in EventInput) (string, error) {
	ev := &gcal.Event{
		Summary:     in.Summary,
		Description: in.Description,
		Start:       &gcal.EventDateTime{DateTime: in.Start, TimeZone: in.TimeZone},
		End:         &gcal.EventDateTime{DateTime: in.End, TimeZone: in.TimeZone},
	}

	created, err := g.svc.Events.Insert(g.calendarID, ev).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to insert event: %w", err)
	}
	return created.Id, nil
}

func (g *GoogleSource) Get(ctx context.Context, id string) (*Event, error) {
	item, err := g.svc.Events.Get(g.calendarID, id).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	ev := fromGoogleEvent(item)
	return &ev, nil
}

func (g *GoogleSource) Delete(ctx context.Context, id string) error {
	if err := g.svc.Events.Delete(g.calendarID, id).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

// fromGoogleEvent flattens the API event shape. A date-only start means the
// event is all-day.
func fromGoogleEvent(item *gcal.Event) Event {
	ev := Event{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		Location:    item.Location,
	}

	if item.Start != nil {
		if item.Start.DateTime != "" {
			ev.Start = item.Start.DateTime
		} else {
			ev.Start = item.Start.Date
			ev.AllDay = true
		}
	}
	if item.End != nil {
		if item.End.DateTime != "" {
			ev.End = item.End.DateTime
		} else {
			ev.End = item.End.Date
		}
	}

	return ev
}
