package service

import (
	"context"
	"testing"

	"roombook/internal/availability/validator"
	"roombook/pkg/config"
	apperrors "roombook/pkg/errors"
	"roombook/pkg/logger"
	"roombook/pkg/model"
)

type mockReservationRepository struct {
	findOverlappingFunc func(ctx context.Context, roomID, date, startTime, endTime string) (*model.Reservation, error)
	upsertFunc          func(ctx context.Context, reservation *model.Reservation) error
	upserted            []*model.Reservation
}

func (m *mockReservationRepository) FindOverlapping(ctx context.Context, roomID, date, startTime, endTime string) (*model.Reservation, error) {
	if m.findOverlappingFunc != nil {
		return m.findOverlappingFunc(ctx, roomID, date, startTime, endTime)
	}
	return nil, nil
}

func (m *mockReservationRepository) Upsert(ctx context.Context, reservation *model.Reservation) error {
	m.upserted = append(m.upserted, reservation)
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, reservation)
	}
	return nil
}

func (m *mockReservationRepository) EnsureIndexes(ctx context.Context) error {
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{Level: "error", Format: logger.JSON, Service: "test"}),
	}
}

func newService(repo *mockReservationRepository) AvailabilityService {
	cfg := testConfig()
	return NewAvailabilityService(repo, validator.NewAvailabilityValidator(cfg.Log), cfg)
}

func TestCheck_FreeSlot(t *testing.T) {
	svc := newService(&mockReservationRepository{})

	verdict, err := svc.Check(context.Background(), &model.AvailabilityRequest{
		RoomID: "LAB-01", Date: "2025-11-10", StartTime: "19:00", EndTime: "21:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !verdict.Available {
		t.Errorf("expected available verdict, got %+v", verdict)
	}
	if verdict.RoomID != "LAB-01" {
		t.Errorf("verdict must echo the room id, got %q", verdict.RoomID)
	}
}

func TestCheck_OccupiedSlot(t *testing.T) {
	repo := &mockReservationRepository{
		findOverlappingFunc: func(ctx context.Context, roomID, date, startTime, endTime string) (*model.Reservation, error) {
			return &model.Reservation{
				BookingID: "existing", RoomID: roomID, Date: date,
				StartTime: "18:00", EndTime: "20:00",
			}, nil
		},
	}
	svc := newService(repo)

	verdict, err := svc.Check(context.Background(), &model.AvailabilityRequest{
		RoomID: "LAB-01", Date: "2025-11-10", StartTime: "19:00", EndTime: "21:00",
	})
	if err != nil {
		t.Fatalf("occupied slot is a verdict, not an error: %v", err)
	}
	if verdict.Available {
		t.Error("expected unavailable verdict")
	}
	if verdict.Reason != "Room occupied between 18:00 and 20:00" {
		t.Errorf("unexpected reason %q", verdict.Reason)
	}
}

func TestCheck_RejectsMalformedRequests(t *testing.T) {
	svc := newService(&mockReservationRepository{})

	tests := []struct {
		name string
		req  model.AvailabilityRequest
	}{
		{"missing room", model.AvailabilityRequest{Date: "2025-11-10", StartTime: "19:00", EndTime: "21:00"}},
		{"bad date", model.AvailabilityRequest{RoomID: "LAB-01", Date: "10/11/2025", StartTime: "19:00", EndTime: "21:00"}},
		{"bad time", model.AvailabilityRequest{RoomID: "LAB-01", Date: "2025-11-10", StartTime: "7pm", EndTime: "21:00"}},
		{"start equals end", model.AvailabilityRequest{RoomID: "LAB-01", Date: "2025-11-10", StartTime: "19:00", EndTime: "19:00"}},
		{"start after end", model.AvailabilityRequest{RoomID: "LAB-01", Date: "2025-11-10", StartTime: "21:00", EndTime: "19:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Check(context.Background(), &tt.req)
			if code := apperrors.CodeOf(err); code != apperrors.CodeValidation {
				t.Errorf("expected %s, got %s (err=%v)", apperrors.CodeValidation, code, err)
			}
		})
	}
}

func TestRecordBooking_UpsertsProjection(t *testing.T) {
	repo := &mockReservationRepository{}
	svc := newService(repo)

	err := svc.RecordBooking(context.Background(), &model.BookingCreatedEvent{
		BookingID: "bk-1", RoomID: "LAB-01", Date: "2025-11-10",
		StartTime: "19:00", EndTime: "21:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.upserted) != 1 {
		t.Fatalf("expected one upsert, got %d", len(repo.upserted))
	}
	got := repo.upserted[0]
	if got.BookingID != "bk-1" || got.RoomID != "LAB-01" || got.StartTime != "19:00" {
		t.Errorf("projection fields wrong: %+v", got)
	}
}

func TestRecordBooking_RejectsIncompleteEvents(t *testing.T) {
	repo := &mockReservationRepository{}
	svc := newService(repo)

	err := svc.RecordBooking(context.Background(), &model.BookingCreatedEvent{RoomID: "LAB-01"})
	if code := apperrors.CodeOf(err); code != apperrors.CodeValidation {
		t.Errorf("expected %s, got %s", apperrors.CodeValidation, code)
	}
	if len(repo.upserted) != 0 {
		t.Error("incomplete event must not reach the projection")
	}
}
