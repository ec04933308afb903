package booking

import (
	"strings"

	"github.com/arenaduna/booking-backend/internal/calendar"
)

// Authorizer decides whether a cancellation request may act on an event.
// The default implementation matches freeform description text; a stronger
// scheme can be substituted without touching the booking logic.
type Authorizer interface {
	Authorize(ev calendar.Event, phone, code string) bool
}

// DescriptionAuthorizer authorizes by substring match against the phone
// number embedded in the event description, plus the cancellation code when
// one is supplied. Weak by design, kept for compatibility with events created
// before codes existed.
type DescriptionAuthorizer struct{}

func NewDescriptionAuthorizer() *DescriptionAuthorizer {
	return &DescriptionAuthorizer{}
}

func (a *DescriptionAuthorizer) Authorize(ev calendar.Event, phone, code string) bool {
	phone = strings.TrimSpace(phone)
	if phone == "" || !strings.Contains(ev.Description, phone) {
		return false
	}
	if code != "" && !strings.Contains(ev.Description, code) {
		return false
	}
	return true
}
