package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"roombook/internal/notify/validator"
	"roombook/pkg/config"
	apperrors "roombook/pkg/errors"
	"roombook/pkg/logger"
	"roombook/pkg/model"
)

func testConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{Level: "error", Format: logger.JSON, Service: "test"}),
	}
}

func validEvent() *model.CalendarEventRequest {
	return &model.CalendarEventRequest{
		Recipient:   "joao@example.com",
		Title:       "Room Reservation - LAB-01",
		Description: "Reservation of room Laboratory 1",
		Location:    "Building A, Floor 1",
		Date:        "2025-11-10",
		StartTime:   "19:00",
		EndTime:     "21:00",
		Organizer:   "Joao Silva",
	}
}

func TestRenderICS(t *testing.T) {
	now := time.Date(2025, 11, 1, 12, 30, 0, 0, time.UTC)

	ics, err := RenderICS(validEvent(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"BEGIN:VEVENT",
		"UID:joao@example.com-20251110T190000",
		"DTSTAMP:20251101T123000Z",
		"DTSTART:20251110T190000",
		"DTEND:20251110T210000",
		"SUMMARY:Room Reservation - LAB-01",
		"LOCATION:Building A, Floor 1",
		"ORGANIZER;CN=Joao Silva:MAILTO:joao@example.com",
		"END:VEVENT",
		"END:VCALENDAR",
	} {
		if !strings.Contains(ics, want) {
			t.Errorf("rendered ics missing %q:\n%s", want, ics)
		}
	}

	if !strings.Contains(ics, "\r\n") {
		t.Error("ics lines must be CRLF terminated")
	}
}

func TestRenderICS_RejectsUnparsableSchedule(t *testing.T) {
	event := validEvent()
	event.StartTime = "7pm"

	if _, err := RenderICS(event, time.Now()); err == nil {
		t.Error("expected error for unparsable start time")
	}
}

func TestCalendarSend(t *testing.T) {
	cfg := testConfig()
	svc := NewCalendarService(validator.NewNotifyValidator(cfg.Log), cfg)

	result, err := svc.Send(context.Background(), validEvent())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Sent {
		t.Error("expected sent=true")
	}
}

func TestCalendarSend_RejectsInvalidPayloads(t *testing.T) {
	cfg := testConfig()
	svc := NewCalendarService(validator.NewNotifyValidator(cfg.Log), cfg)

	tests := []struct {
		name   string
		mutate func(e *model.CalendarEventRequest)
	}{
		{"bad recipient", func(e *model.CalendarEventRequest) { e.Recipient = "nope" }},
		{"missing title", func(e *model.CalendarEventRequest) { e.Title = "" }},
		{"bad date", func(e *model.CalendarEventRequest) { e.Date = "November 10" }},
		{"missing organizer", func(e *model.CalendarEventRequest) { e.Organizer = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := validEvent()
			tt.mutate(event)

			_, err := svc.Send(context.Background(), event)
			if code := apperrors.CodeOf(err); code != apperrors.CodeValidation {
				t.Errorf("expected %s, got %s", apperrors.CodeValidation, code)
			}
		})
	}
}
