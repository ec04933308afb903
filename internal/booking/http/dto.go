package http

import (
	"github.com/arenaduna/booking-backend/internal/booking"
	"github.com/arenaduna/booking-backend/internal/calendar"
	"github.com/arenaduna/booking-backend/internal/schedule"
)

// AvailabilityRequest defines query parameters for the availability listing.
type AvailabilityRequest struct {
	Date     string `form:"date" binding:"required"`
	Duration int    `form:"duration" binding:"required"`
}

// SlotResponse is one candidate slot with its free-court count.
type SlotResponse struct {
	Start           string `json:"start"`
	End             string `json:"end"`
	AvailableCourts int    `json:"available_courts"`
}

func NewSlotResponses(slots []schedule.Slot) []SlotResponse {
	out := make([]SlotResponse, len(slots))
	for i, s := range slots {
		out[i] = SlotResponse{
			Start:           s.Start,
			End:             s.End,
			AvailableCourts: s.AvailableCourts,
		}
	}
	return out
}

// CreateBookingRequest is the payload for POST /v1/bookings.
type CreateBookingRequest struct {
	Date     string `json:"date" binding:"required"`
	Start    string `json:"start" binding:"required"`
	Duration int    `json:"duration" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email"`
}

// BookingResponse is the result of a successful booking.
type BookingResponse struct {
	Court      int    `json:"court"`
	Start      string `json:"start"`
	End        string `json:"end"`
	EventID    string `json:"event_id"`
	CancelCode string `json:"cancel_code"`
}

func NewBookingResponse(a *booking.CourtAssignment) BookingResponse {
	return BookingResponse{
		Court:      a.Court,
		Start:      a.Start,
		End:        a.End,
		EventID:    a.EventID,
		CancelCode: a.CancelCode,
	}
}

// CancelBookingRequest is the payload for POST /v1/bookings/cancel.
type CancelBookingRequest struct {
	Phone      string `json:"phone" binding:"required"`
	EventID    string `json:"event_id"`
	CancelCode string `json:"cancel_code"`
}

// CancelResponse confirms the removed event.
type CancelResponse struct {
	EventID string `json:"event_id"`
	Summary string `json:"summary"`
	Start   string `json:"start"`
}

func NewCancelResponse(r *booking.CancelResult) CancelResponse {
	return CancelResponse{
		EventID: r.EventID,
		Summary: r.Summary,
		Start:   r.Start,
	}
}

// EventResponse is the read shape for the authenticated upcoming listing.
type EventResponse struct {
	ID      string `json:"id"`
	Summary string `json:"summary"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

func NewEventResponses(events []calendar.Event) []EventResponse {
	out := make([]EventResponse, len(events))
	for i, ev := range events {
		out[i] = EventResponse{
			ID:      ev.ID,
			Summary: ev.Summary,
			Start:   ev.Start,
			End:     ev.End,
		}
	}
	return out
}
