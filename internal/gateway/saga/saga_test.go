package saga

import (
	"context"
	"errors"
	"testing"

	"roombook/internal/gateway/validator"
	apperrors "roombook/pkg/errors"
	"roombook/pkg/logger"
	"roombook/pkg/model"
)

type mockRooms struct {
	calls      int
	lookupFunc func(ctx context.Context, roomID string) (*model.RoomInfo, error)
}

func (m *mockRooms) Lookup(ctx context.Context, roomID string) (*model.RoomInfo, error) {
	m.calls++
	if m.lookupFunc != nil {
		return m.lookupFunc(ctx, roomID)
	}
	return &model.RoomInfo{ID: roomID, Name: "Laboratory 1", Location: "Building A, Floor 1", Capacity: 30, Available: true}, nil
}

type mockAvailability struct {
	calls     int
	checkFunc func(ctx context.Context, req model.AvailabilityRequest) (*model.AvailabilityVerdict, error)
}

func (m *mockAvailability) Check(ctx context.Context, req model.AvailabilityRequest) (*model.AvailabilityVerdict, error) {
	m.calls++
	if m.checkFunc != nil {
		return m.checkFunc(ctx, req)
	}
	return &model.AvailabilityVerdict{RoomID: req.RoomID, Available: true, Reason: "Room available at the requested time"}, nil
}

type mockLedger struct {
	calls      int
	commitFunc func(ctx context.Context, req model.ReservationRequest) (*model.BookingRecord, error)
}

func (m *mockLedger) Commit(ctx context.Context, req model.ReservationRequest) (*model.BookingRecord, error) {
	m.calls++
	if m.commitFunc != nil {
		return m.commitFunc(ctx, req)
	}
	return &model.BookingRecord{
		ID:             "b6dca1a0-5f3c-4e56-9a47-2f1c0a9f3d21",
		RoomID:         req.RoomID,
		Date:           req.Date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		RequesterName:  req.RequesterName,
		RequesterEmail: req.RequesterEmail,
	}, nil
}

type mockEmail struct {
	calls    int
	lastReq  model.EmailRequest
	sendFunc func(ctx context.Context, req model.EmailRequest) (*model.NotificationResult, error)
}

func (m *mockEmail) Send(ctx context.Context, req model.EmailRequest) (*model.NotificationResult, error) {
	m.calls++
	m.lastReq = req
	if m.sendFunc != nil {
		return m.sendFunc(ctx, req)
	}
	return &model.NotificationResult{Sent: true}, nil
}

type mockCalendar struct {
	calls    int
	lastReq  model.CalendarEventRequest
	sendFunc func(ctx context.Context, req model.CalendarEventRequest) (*model.NotificationResult, error)
}

func (m *mockCalendar) Send(ctx context.Context, req model.CalendarEventRequest) (*model.NotificationResult, error) {
	m.calls++
	m.lastReq = req
	if m.sendFunc != nil {
		return m.sendFunc(ctx, req)
	}
	return &model.NotificationResult{Sent: true}, nil
}

type fixture struct {
	rooms        *mockRooms
	availability *mockAvailability
	ledger       *mockLedger
	email        *mockEmail
	calendar     *mockCalendar
	orchestrator *Orchestrator
}

func newFixture() *fixture {
	log := logger.New(logger.Config{Level: "error", Format: logger.JSON, Service: "test"})
	f := &fixture{
		rooms:        &mockRooms{},
		availability: &mockAvailability{},
		ledger:       &mockLedger{},
		email:        &mockEmail{},
		calendar:     &mockCalendar{},
	}
	f.orchestrator = NewOrchestrator(
		f.rooms, f.availability, f.ledger, f.email, f.calendar,
		validator.NewReservationValidator(log), log,
	)
	return f
}

func validRequest() *model.ReservationRequest {
	return &model.ReservationRequest{
		RoomID:         "LAB-01",
		Date:           "2025-11-10",
		StartTime:      "19:00",
		EndTime:        "21:00",
		RequesterName:  "Joao Silva",
		RequesterEmail: "joao@example.com",
	}
}

func TestExecute_HappyPath(t *testing.T) {
	f := newFixture()

	result, err := f.orchestrator.Execute(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.BookingID == "" {
		t.Error("expected a booking id")
	}
	if result.RoomName != "Laboratory 1" {
		t.Errorf("expected resolved room name, got %q", result.RoomName)
	}
	if result.Date != "2025-11-10" || result.StartTime != "19:00" || result.EndTime != "21:00" {
		t.Errorf("schedule not echoed back: %+v", result)
	}
	if !result.Email.Sent || !result.Calendar.Sent {
		t.Errorf("expected both notifications sent, got email=%v calendar=%v", result.Email.Sent, result.Calendar.Sent)
	}
	if f.ledger.calls != 1 {
		t.Errorf("expected exactly one commit, got %d", f.ledger.calls)
	}
}

func TestExecute_InvalidInterval_NoDownstreamCalls(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.StartTime = "21:00"
	req.EndTime = "19:00"

	_, err := f.orchestrator.Execute(context.Background(), req)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if code := apperrors.CodeOf(err); code != apperrors.CodeValidation {
		t.Errorf("expected %s, got %s", apperrors.CodeValidation, code)
	}

	if f.rooms.calls != 0 || f.availability.calls != 0 || f.ledger.calls != 0 || f.email.calls != 0 || f.calendar.calls != 0 {
		t.Errorf("expected zero downstream calls, got rooms=%d availability=%d ledger=%d email=%d calendar=%d",
			f.rooms.calls, f.availability.calls, f.ledger.calls, f.email.calls, f.calendar.calls)
	}
}

func TestExecute_EqualStartAndEnd_Rejected(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.EndTime = req.StartTime

	_, err := f.orchestrator.Execute(context.Background(), req)
	if code := apperrors.CodeOf(err); code != apperrors.CodeValidation {
		t.Errorf("expected %s, got %s", apperrors.CodeValidation, code)
	}
}

func TestExecute_UnknownRoom_ShortCircuits(t *testing.T) {
	f := newFixture()
	f.rooms.lookupFunc = func(ctx context.Context, roomID string) (*model.RoomInfo, error) {
		return nil, apperrors.NotFoundWithID("Room", roomID)
	}

	req := validRequest()
	req.RoomID = "LAB-99"

	_, err := f.orchestrator.Execute(context.Background(), req)
	if code := apperrors.CodeOf(err); code != apperrors.CodeNotFound {
		t.Errorf("expected %s, got %s", apperrors.CodeNotFound, code)
	}

	if f.availability.calls != 0 || f.ledger.calls != 0 {
		t.Errorf("expected no calls past lookup, got availability=%d ledger=%d", f.availability.calls, f.ledger.calls)
	}
}

func TestExecute_UnavailableVerdict_IsConflict(t *testing.T) {
	f := newFixture()
	f.availability.checkFunc = func(ctx context.Context, req model.AvailabilityRequest) (*model.AvailabilityVerdict, error) {
		return &model.AvailabilityVerdict{
			RoomID:    req.RoomID,
			Available: false,
			Reason:    "Room occupied between 18:00 and 20:00",
		}, nil
	}

	_, err := f.orchestrator.Execute(context.Background(), validRequest())
	if code := apperrors.CodeOf(err); code != apperrors.CodeConflict {
		t.Errorf("expected %s, got %s", apperrors.CodeConflict, code)
	}

	if f.ledger.calls != 0 {
		t.Errorf("expected no commit after negative verdict, got %d", f.ledger.calls)
	}
	if f.email.calls != 0 || f.calendar.calls != 0 {
		t.Error("expected no notifications after abort")
	}
}

func TestExecute_LedgerConflict_Propagates(t *testing.T) {
	f := newFixture()
	f.ledger.commitFunc = func(ctx context.Context, req model.ReservationRequest) (*model.BookingRecord, error) {
		return nil, apperrors.Conflict("Booking time overlaps with existing booking (19:00 - 21:00)")
	}

	_, err := f.orchestrator.Execute(context.Background(), validRequest())
	if code := apperrors.CodeOf(err); code != apperrors.CodeConflict {
		t.Errorf("expected %s, got %s", apperrors.CodeConflict, code)
	}
	if f.email.calls != 0 || f.calendar.calls != 0 {
		t.Error("expected no notifications after failed commit")
	}
}

func TestExecute_UnreachableLedger_IsUnavailable(t *testing.T) {
	f := newFixture()
	f.ledger.commitFunc = func(ctx context.Context, req model.ReservationRequest) (*model.BookingRecord, error) {
		return nil, apperrors.UnavailableWithCause("Booking Ledger", errors.New("connection refused"))
	}

	_, err := f.orchestrator.Execute(context.Background(), validRequest())
	if code := apperrors.CodeOf(err); code != apperrors.CodeUnavailable {
		t.Errorf("expected %s, got %s", apperrors.CodeUnavailable, code)
	}
}

func TestExecute_EmailFailure_StillSucceeds(t *testing.T) {
	f := newFixture()
	f.email.sendFunc = func(ctx context.Context, req model.EmailRequest) (*model.NotificationResult, error) {
		return nil, apperrors.UnavailableWithCause("Email Notifier", errors.New("connection refused"))
	}

	result, err := f.orchestrator.Execute(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("notification failure must not fail the saga: %v", err)
	}

	if result.Email.Sent {
		t.Error("expected email outcome sent=false")
	}
	if result.Email.Reason == "" {
		t.Error("expected a reason on the failed email outcome")
	}
	if !result.Calendar.Sent {
		t.Error("calendar outcome must be unaffected by email failure")
	}
	if f.calendar.calls != 1 {
		t.Errorf("calendar notifier must still be invoked, got %d calls", f.calendar.calls)
	}
}

func TestExecute_BothNotificationsFail_StillSucceeds(t *testing.T) {
	f := newFixture()
	f.email.sendFunc = func(ctx context.Context, req model.EmailRequest) (*model.NotificationResult, error) {
		return nil, apperrors.Unavailable("Email Notifier")
	}
	f.calendar.sendFunc = func(ctx context.Context, req model.CalendarEventRequest) (*model.NotificationResult, error) {
		return nil, apperrors.Unavailable("Calendar Notifier")
	}

	result, err := f.orchestrator.Execute(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Email.Sent || result.Calendar.Sent {
		t.Errorf("expected both outcomes sent=false, got %+v", result)
	}
	if result.BookingID == "" {
		t.Error("booking must survive notification failures")
	}
}

func TestExecute_NotificationPayloadsComposedFromRoom(t *testing.T) {
	f := newFixture()

	_, err := f.orchestrator.Execute(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f.email.lastReq.Recipient != "joao@example.com" {
		t.Errorf("unexpected email recipient %q", f.email.lastReq.Recipient)
	}
	if f.email.lastReq.Subject != "Booking Confirmation - Room LAB-01" {
		t.Errorf("unexpected email subject %q", f.email.lastReq.Subject)
	}

	if f.calendar.lastReq.Title != "Room Reservation - LAB-01" {
		t.Errorf("unexpected event title %q", f.calendar.lastReq.Title)
	}
	if f.calendar.lastReq.Location != "Building A, Floor 1" {
		t.Errorf("expected room location in event, got %q", f.calendar.lastReq.Location)
	}
	if f.calendar.lastReq.Organizer != "Joao Silva" {
		t.Errorf("unexpected organizer %q", f.calendar.lastReq.Organizer)
	}
}
