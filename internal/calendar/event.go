package calendar

// Event is the typed shape of a raw calendar event, populated once at the
// collaborator boundary. Start and End keep the upstream string encoding: a
// date-only value for all-day events, otherwise a timestamp with a numeric
// offset or a "Z" marker depending on how the source event's timezone field
// was populated.
type Event struct {
	ID          string
	Summary     string
	Description string
	Location    string
	Start       string
	End         string
	AllDay      bool
}

// EventInput describes a timed event to be created in the venue calendar.
type EventInput struct {
	Summary     string
	Description string
	Start       string // RFC 3339
	End         string // RFC 3339
	TimeZone    string
}
