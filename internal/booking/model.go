package booking

import (
	"net/http"
	"time"

	"github.com/arenaduna/booking-backend/internal/pkg/apperror"
)

var (
	ErrSlotUnavailable = apperror.Conflict("time slot is not available")
	ErrFullyBooked     = apperror.Conflict("both courts are already booked for this time slot")
	ErrNotAuthorized   = apperror.Authorization("no booking found for this phone number")
	ErrBookingNotFound = apperror.New(http.StatusNotFound, "booking not found")
	ErrCodeMismatch    = apperror.Authorization("cancellation code does not match")
	ErrOutsideHours    = apperror.Validation("start time is outside business hours or off the hourly grid")
	ErrInvalidDate     = apperror.Validation("date must be in YYYY-MM-DD format")
	ErrInvalidStart    = apperror.Validation("start must be in HH:MM format")
	ErrInvalidDuration = apperror.Validation("duration must be 60 or 120 minutes")
	ErrNameRequired    = apperror.Validation("name is required")
	ErrPhoneRequired   = apperror.Validation("phone is required")
	ErrInvalidEmail    = apperror.Validation("email is not valid")
)

// CancelLookahead bounds the upcoming-event search window for cancellation.
const CancelLookahead = 120 * 24 * time.Hour

// CreateRequest carries one inbound booking request. It is consumed once to
// produce a calendar-insert side effect; the created event itself becomes the
// durable record.
type CreateRequest struct {
	Date     string // YYYY-MM-DD
	Start    string // HH:MM
	Duration int    // minutes, 60 or 120
	Name     string
	Phone    string
	Email    string // optional
}

// CourtAssignment is the result of a successful booking.
type CourtAssignment struct {
	Court      int
	Start      string
	End        string
	EventID    string
	CancelCode string
}

// CancelRequest identifies the booking to cancel. EventID and CancelCode are
// optional; without an EventID the earliest matching upcoming event is chosen.
type CancelRequest struct {
	Phone      string
	EventID    string
	CancelCode string
}

// CancelResult confirms which event was removed.
type CancelResult struct {
	EventID string
	Summary string
	Start   string
}
