package booking

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/arenaduna/booking-backend/internal/calendar"
	"github.com/arenaduna/booking-backend/internal/notify"
	"github.com/arenaduna/booking-backend/internal/pkg/apperror"
	"github.com/arenaduna/booking-backend/internal/schedule"
)

var (
	dateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	startRe = regexp.MustCompile(`^\d{2}:\d{2}$`)
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// originMarker tags calendar events created by this system.
const originMarker = "arenaduna-booking"

// Service defines the booking operations backed by the external calendar.
type Service interface {
	// Availability returns the slot template for date annotated with free
	// court counts.
	Availability(ctx context.Context, date string, durationMinutes int) ([]schedule.Slot, error)
	// Book runs the full booking decision and creates the calendar event.
	Book(ctx context.Context, req CreateRequest) (*CourtAssignment, error)
	// Cancel removes an upcoming booking authorized by phone (and code).
	Cancel(ctx context.Context, req CancelRequest) (*CancelResult, error)
	// UpcomingByPhone lists upcoming events whose description embeds phone.
	UpcomingByPhone(ctx context.Context, phone string) ([]calendar.Event, error)
}

type service struct {
	source     calendar.EventSource
	engine     *schedule.Engine
	authorizer Authorizer
	notifier   notify.Notifier
	logger     *zap.Logger
	now        func() time.Time
}

// NewService creates the booking Service.
func NewService(
	source calendar.EventSource,
	engine *schedule.Engine,
	authorizer Authorizer,
	notifier notify.Notifier,
	logger *zap.Logger,
) Service {
	return &service{
		source:     source,
		engine:     engine,
		authorizer: authorizer,
		notifier:   notifier,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *service) Availability(ctx context.Context, date string, durationMinutes int) ([]schedule.Slot, error) {
	day, err := s.parseDate(date)
	if err != nil {
		return nil, err
	}
	if !schedule.ValidDuration(durationMinutes) {
		return nil, ErrInvalidDuration
	}

	events, err := s.source.ListDay(ctx, day)
	if err != nil {
		return nil, s.upstream("list events", err)
	}

	return s.engine.Availability(day, durationMinutes, events), nil
}

func (s *service) Book(ctx context.Context, req CreateRequest) (*CourtAssignment, error) {
	// Validating.
	day, slot, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	// Checking conflicts. The check precedes the insert; nothing is ever left
	// half-committed. Two concurrent requests can still both pass here — the
	// calendar is the only shared state and there is no transaction around it.
	events, err := s.source.ListDay(ctx, day)
	if err != nil {
		return nil, s.upstream("list events", err)
	}

	occ := s.engine.SlotOccupancy(*slot, events)
	if occ.AllDay || occ.BlockBoth {
		return nil, ErrSlotUnavailable
	}
	if s.engine.UnknownPolicy() == schedule.UnknownBlock && occ.Unknown > 0 {
		return nil, ErrSlotUnavailable
	}

	// Assigning court.
	load := occ.KnownCount() + occ.Unknown
	if load > schedule.NumCourts {
		load = schedule.NumCourts
	}
	if load >= schedule.NumCourts {
		return nil, ErrFullyBooked
	}
	// Lowest free court wins. An unattributed event alone does not steer the
	// choice away from court 1.
	court := 1
	if occ.KnownOccupied(1) {
		court = 2
	}

	// Committing.
	code := newCancelCode()
	name := strings.TrimSpace(req.Name)
	start := time.Date(day.Year(), day.Month(), day.Day(), slot.StartMin/60, slot.StartMin%60, 0, 0, s.engine.Location())
	end := start.Add(time.Duration(req.Duration) * time.Minute)

	eventID, err := s.source.Insert(ctx, calendar.EventInput{
		Summary:     fmt.Sprintf("Quadra %d - %s", court, name),
		Description: s.buildDescription(req, code, occ.Unknown > 0),
		Start:       start.Format(time.RFC3339),
		End:         end.Format(time.RFC3339),
		TimeZone:    s.engine.Location().String(),
	})
	if err != nil {
		return nil, s.upstream("insert event", err)
	}

	assignment := &CourtAssignment{
		Court:      court,
		Start:      slot.Start,
		End:        slot.End,
		EventID:    eventID,
		CancelCode: code,
	}

	// Fire-and-forget notification: failure never fails the booking.
	subject := "Reserva confirmada"
	message := fmt.Sprintf("Quadra %d em %s, %s-%s, para %s", court, req.Date, slot.Start, slot.End, name)
	if err := s.notifier.Notify(ctx, subject, message); err != nil {
		s.logger.Warn("booking notification failed",
			zap.String("event_id", eventID),
			zap.Error(err),
		)
	}

	return assignment, nil
}

func (s *service) Cancel(ctx context.Context, req CancelRequest) (*CancelResult, error) {
	phone := strings.TrimSpace(req.Phone)
	if phone == "" {
		return nil, ErrPhoneRequired
	}

	now := s.now()
	events, err := s.source.ListRange(ctx, now, now.Add(CancelLookahead))
	if err != nil {
		return nil, s.upstream("list events", err)
	}

	target, err := s.pickCancelTarget(events, phone, req.EventID, req.CancelCode)
	if err != nil {
		return nil, err
	}

	if err := s.source.Delete(ctx, target.ID); err != nil {
		return nil, s.upstream("delete event", err)
	}

	return &CancelResult{
		EventID: target.ID,
		Summary: target.Summary,
		Start:   target.Start,
	}, nil
}

func (s *service) UpcomingByPhone(ctx context.Context, phone string) ([]calendar.Event, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, ErrPhoneRequired
	}

	now := s.now()
	events, err := s.source.ListRange(ctx, now, now.Add(CancelLookahead))
	if err != nil {
		return nil, s.upstream("list events", err)
	}

	var mine []calendar.Event
	for _, ev := range events {
		if s.authorizer.Authorize(ev, phone, "") {
			mine = append(mine, ev)
		}
	}
	return mine, nil
}

// pickCancelTarget selects the event to delete. With an explicit event ID the
// event must exist in the window and pass authorization; otherwise the
// earliest matching upcoming event is the default target (the listing is
// ordered by start time).
func (s *service) pickCancelTarget(events []calendar.Event, phone, eventID, code string) (*calendar.Event, error) {
	if eventID != "" {
		for i := range events {
			if events[i].ID != eventID {
				continue
			}
			if !s.authorizer.Authorize(events[i], phone, "") {
				return nil, ErrNotAuthorized
			}
			if !s.authorizer.Authorize(events[i], phone, code) {
				return nil, ErrCodeMismatch
			}
			return &events[i], nil
		}
		return nil, ErrBookingNotFound
	}

	for i := range events {
		if s.authorizer.Authorize(events[i], phone, code) {
			return &events[i], nil
		}
	}
	return nil, ErrNotAuthorized
}

// validate runs the validating state: formats, duration, trimmed fields,
// email syntax when provided, and slot-grid membership for the date's
// template.
func (s *service) validate(req CreateRequest) (time.Time, *schedule.Slot, error) {
	day, err := s.parseDate(req.Date)
	if err != nil {
		return time.Time{}, nil, err
	}
	if !startRe.MatchString(req.Start) {
		return time.Time{}, nil, ErrInvalidStart
	}
	if !schedule.ValidDuration(req.Duration) {
		return time.Time{}, nil, ErrInvalidDuration
	}
	if strings.TrimSpace(req.Name) == "" {
		return time.Time{}, nil, ErrNameRequired
	}
	if strings.TrimSpace(req.Phone) == "" {
		return time.Time{}, nil, ErrPhoneRequired
	}
	if email := strings.TrimSpace(req.Email); email != "" && !emailRe.MatchString(email) {
		return time.Time{}, nil, ErrInvalidEmail
	}

	clock, err := time.Parse("15:04", req.Start)
	if err != nil {
		return time.Time{}, nil, ErrInvalidStart
	}
	startMin := clock.Hour()*60 + clock.Minute()
	endMin := startMin + req.Duration

	// The requested [start, end) must exactly equal one template member;
	// off-grid times are rejected regardless of actual availability.
	for _, slot := range s.engine.SlotsFor(day, req.Duration) {
		if slot.StartMin == startMin && slot.EndMin == endMin {
			return day, &slot, nil
		}
	}
	return time.Time{}, nil, ErrOutsideHours
}

func (s *service) parseDate(date string) (time.Time, error) {
	if !dateRe.MatchString(date) {
		return time.Time{}, ErrInvalidDate
	}
	day, err := time.ParseInLocation("2006-01-02", date, s.engine.Location())
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return day, nil
}

func (s *service) buildDescription(req CreateRequest, code string, sharedWithUnknown bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Nome: %s\n", strings.TrimSpace(req.Name))
	fmt.Fprintf(&b, "Telefone: %s\n", strings.TrimSpace(req.Phone))
	if email := strings.TrimSpace(req.Email); email != "" {
		fmt.Fprintf(&b, "Email: %s\n", email)
	}
	fmt.Fprintf(&b, "Duração: %d minutos\n", req.Duration)
	fmt.Fprintf(&b, "Código: %s\n", code)
	fmt.Fprintf(&b, "Origem: %s\n", originMarker)
	if sharedWithUnknown {
		b.WriteString("Atenção: horário compartilhado com evento sem quadra identificada, conferir no local\n")
	}
	return b.String()
}

// upstream hides collaborator failures behind a generic message; the cause is
// logged for operators only.
func (s *service) upstream(op string, err error) error {
	s.logger.Error("calendar call failed", zap.String("op", op), zap.Error(err))
	return apperror.Upstream(err)
}

func newCancelCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:6])
}
