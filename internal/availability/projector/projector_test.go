package projector

import (
	"context"
	"encoding/json"
	"testing"

	"roombook/pkg/kafka"
	"roombook/pkg/logger"
	"roombook/pkg/model"
)

type mockService struct {
	recorded []*model.BookingCreatedEvent
	err      error
}

func (m *mockService) Check(ctx context.Context, req *model.AvailabilityRequest) (*model.AvailabilityVerdict, error) {
	return nil, nil
}

func (m *mockService) RecordBooking(ctx context.Context, event *model.BookingCreatedEvent) error {
	if m.err != nil {
		return m.err
	}
	m.recorded = append(m.recorded, event)
	return nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Format: logger.JSON, Service: "test"})
}

func TestHandleMessage(t *testing.T) {
	svc := &mockService{}
	p := NewProjector(svc, testLogger())

	payload, _ := json.Marshal(model.BookingCreatedEvent{
		BookingID: "bk-1", RoomID: "LAB-01", Date: "2025-11-10",
		StartTime: "19:00", EndTime: "21:00",
	})

	err := p.HandleMessage(context.Background(), kafka.Message{
		Key:   "LAB-01",
		Value: payload,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(svc.recorded) != 1 {
		t.Fatalf("expected one recorded booking, got %d", len(svc.recorded))
	}
	if svc.recorded[0].BookingID != "bk-1" {
		t.Errorf("unexpected event %+v", svc.recorded[0])
	}
}

func TestHandleMessage_MalformedPayload(t *testing.T) {
	svc := &mockService{}
	p := NewProjector(svc, testLogger())

	err := p.HandleMessage(context.Background(), kafka.Message{
		Key:   "LAB-01",
		Value: []byte("{not json"),
	})
	if err == nil {
		t.Fatal("expected decode error")
	}
	if len(svc.recorded) != 0 {
		t.Error("malformed payload must not reach the service")
	}
}
