package saga

import (
	"context"
	"fmt"

	"roombook/internal/gateway/validator"
	apperrors "roombook/pkg/errors"
	"roombook/pkg/logger"
	"roombook/pkg/model"
)

// State names the position of a reservation run in its linear flow.
type State string

const (
	StateInit           State = "INIT"
	StateLookup         State = "LOOKUP"
	StateAvailability   State = "AVAILABILITY"
	StateBook           State = "BOOK"
	StateNotifyEmail    State = "NOTIFY_EMAIL"
	StateNotifyCalendar State = "NOTIFY_CALENDAR"
	StateDone           State = "DONE"
	StateAborted        State = "ABORTED"
)

// Downstream collaborator contracts. The typed HTTP clients in
// pkg/client satisfy these; tests substitute mocks.
type RoomDirectory interface {
	Lookup(ctx context.Context, roomID string) (*model.RoomInfo, error)
}

type AvailabilityChecker interface {
	Check(ctx context.Context, req model.AvailabilityRequest) (*model.AvailabilityVerdict, error)
}

type BookingLedger interface {
	Commit(ctx context.Context, req model.ReservationRequest) (*model.BookingRecord, error)
}

type EmailNotifier interface {
	Send(ctx context.Context, req model.EmailRequest) (*model.NotificationResult, error)
}

type CalendarNotifier interface {
	Send(ctx context.Context, req model.CalendarEventRequest) (*model.NotificationResult, error)
}

// run carries the mutable state of one saga execution. Each run is
// confined to the goroutine serving its request.
type run struct {
	req      *model.ReservationRequest
	state    State
	room     *model.RoomInfo
	booking  *model.BookingRecord
	email    model.NotificationOutcome
	calendar model.NotificationOutcome
}

type step struct {
	name     State
	critical bool
	execute  func(ctx context.Context, r *run) error
}

// Orchestrator drives the reservation flow: three critical steps that
// abort on failure, then two best-effort notifications. Only BOOK
// mutates downstream state and it is the last critical step, so an
// abort never needs compensation.
type Orchestrator struct {
	rooms        RoomDirectory
	availability AvailabilityChecker
	ledger       BookingLedger
	email        EmailNotifier
	calendar     CalendarNotifier
	validator    *validator.ReservationValidator
	log          *logger.Logger
	steps        []step
}

func NewOrchestrator(
	rooms RoomDirectory,
	availability AvailabilityChecker,
	ledger BookingLedger,
	email EmailNotifier,
	calendar CalendarNotifier,
	validator *validator.ReservationValidator,
	log *logger.Logger,
) *Orchestrator {
	o := &Orchestrator{
		rooms:        rooms,
		availability: availability,
		ledger:       ledger,
		email:        email,
		calendar:     calendar,
		validator:    validator,
		log:          log,
	}
	o.steps = []step{
		{name: StateLookup, critical: true, execute: o.lookupRoom},
		{name: StateAvailability, critical: true, execute: o.checkAvailability},
		{name: StateBook, critical: true, execute: o.commitBooking},
		{name: StateNotifyEmail, critical: false, execute: o.notifyEmail},
		{name: StateNotifyCalendar, critical: false, execute: o.notifyCalendar},
	}
	return o
}

// Execute runs one reservation saga to completion. Critical failures
// return the downstream error unchanged; notification failures are
// folded into the result and never abort a committed booking.
func (o *Orchestrator) Execute(ctx context.Context, req *model.ReservationRequest) (*model.ReservationResult, error) {
	r := &run{req: req, state: StateInit}

	if err := o.validator.Validate(req); err != nil {
		o.log.Warn("Reservation rejected before orchestration", "room_id", req.RoomID, "error", err)
		return nil, apperrors.Validation(err.Error())
	}

	o.log.Info("Reservation saga started",
		"room_id", req.RoomID,
		"date", req.Date,
		"interval", req.StartTime+" - "+req.EndTime,
	)

	for i, s := range o.steps {
		r.state = s.name
		err := s.execute(ctx, r)
		if err == nil {
			continue
		}

		if s.critical {
			r.state = StateAborted
			o.log.Error("Reservation saga aborted",
				"step", string(s.name),
				"progress", fmt.Sprintf("%d/%d", i+1, len(o.steps)),
				"error", err,
			)
			return nil, err
		}

		// Non-critical step: the outcome fields were already filled
		// by the step itself; keep going.
		o.log.Warn("Notification step failed, continuing",
			"step", string(s.name),
			"error", err,
		)
	}

	r.state = StateDone
	o.log.Info("Reservation saga completed",
		"booking_id", r.booking.ID,
		"room_id", r.req.RoomID,
		"email_sent", r.email.Sent,
		"calendar_sent", r.calendar.Sent,
	)

	return &model.ReservationResult{
		BookingID: r.booking.ID,
		RoomID:    r.req.RoomID,
		RoomName:  r.room.Name,
		Date:      r.req.Date,
		StartTime: r.req.StartTime,
		EndTime:   r.req.EndTime,
		Requester: r.req.RequesterName,
		Email:     r.email,
		Calendar:  r.calendar,
	}, nil
}

func (o *Orchestrator) lookupRoom(ctx context.Context, r *run) error {
	room, err := o.rooms.Lookup(ctx, r.req.RoomID)
	if err != nil {
		return err
	}
	r.room = room
	o.log.Info("Room resolved", "room_id", room.ID, "room_name", room.Name)
	return nil
}

// checkAvailability trusts the checker's verdict; the orchestrator
// never re-derives overlap on its own.
func (o *Orchestrator) checkAvailability(ctx context.Context, r *run) error {
	verdict, err := o.availability.Check(ctx, model.AvailabilityRequest{
		RoomID:    r.req.RoomID,
		Date:      r.req.Date,
		StartTime: r.req.StartTime,
		EndTime:   r.req.EndTime,
	})
	if err != nil {
		return err
	}
	if !verdict.Available {
		return apperrors.Conflict(fmt.Sprintf("Room not available: %s", verdict.Reason))
	}
	o.log.Info("Room available", "room_id", r.req.RoomID)
	return nil
}

func (o *Orchestrator) commitBooking(ctx context.Context, r *run) error {
	booking, err := o.ledger.Commit(ctx, *r.req)
	if err != nil {
		return err
	}
	r.booking = booking
	o.log.Info("Booking committed", "booking_id", booking.ID)
	return nil
}

func (o *Orchestrator) notifyEmail(ctx context.Context, r *run) error {
	r.email = model.NotificationOutcome{Channel: model.ChannelEmail}

	result, err := o.email.Send(ctx, composeEmail(r.req, r.room))
	if err != nil {
		r.email.Reason = apperrors.AsAppError(err).Message
		return err
	}

	r.email.Sent = result.Sent
	r.email.Reason = result.Reason
	return nil
}

func (o *Orchestrator) notifyCalendar(ctx context.Context, r *run) error {
	r.calendar = model.NotificationOutcome{Channel: model.ChannelCalendar}

	result, err := o.calendar.Send(ctx, composeCalendarEvent(r.req, r.room))
	if err != nil {
		r.calendar.Reason = apperrors.AsAppError(err).Message
		return err
	}

	r.calendar.Sent = result.Sent
	r.calendar.Reason = result.Reason
	return nil
}

func composeEmail(req *model.ReservationRequest, room *model.RoomInfo) model.EmailRequest {
	body := fmt.Sprintf(`Hello %s,

Your reservation has been confirmed!

Reservation details:
- Room: %s
- Date: %s
- Time: %s - %s

Best regards,
Roombook`,
		req.RequesterName, room.Name, req.Date, req.StartTime, req.EndTime)

	return model.EmailRequest{
		Recipient: req.RequesterEmail,
		Subject:   fmt.Sprintf("Booking Confirmation - Room %s", req.RoomID),
		Body:      body,
		Context: map[string]string{
			"room_id": req.RoomID,
			"date":    req.Date,
			"time":    req.StartTime + " - " + req.EndTime,
		},
	}
}

func composeCalendarEvent(req *model.ReservationRequest, room *model.RoomInfo) model.CalendarEventRequest {
	location := room.Location
	if location == "" {
		location = req.RoomID
	}

	return model.CalendarEventRequest{
		Recipient:   req.RequesterEmail,
		Title:       fmt.Sprintf("Room Reservation - %s", req.RoomID),
		Description: fmt.Sprintf("Reservation of room %s", room.Name),
		Location:    location,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Organizer:   req.RequesterName,
	}
}
