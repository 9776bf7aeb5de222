package service

import (
	"context"
	"fmt"
	"time"

	"roombook/internal/notify/validator"
	"roombook/pkg/config"
	apperrors "roombook/pkg/errors"
	"roombook/pkg/model"
)

type CalendarService interface {
	Send(ctx context.Context, req *model.CalendarEventRequest) (*model.NotificationResult, error)
}

type calendarService struct {
	validator *validator.NotifyValidator
	cfg       *config.Config
	now       func() time.Time
}

func NewCalendarService(validator *validator.NotifyValidator, cfg *config.Config) CalendarService {
	return &calendarService{
		validator: validator,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Send renders the event as an iCalendar attachment and logs the
// simulated invitation. Like the email channel, no real mail is sent.
func (s *calendarService) Send(ctx context.Context, req *model.CalendarEventRequest) (*model.NotificationResult, error) {
	if err := s.validator.Validate(req); err != nil {
		s.cfg.Log.Warn("Calendar event validation failed", "error", err)
		return nil, apperrors.Validation(err.Error())
	}

	ics, err := RenderICS(req, s.now().UTC())
	if err != nil {
		s.cfg.Log.Error("Failed to render calendar event", "recipient", req.Recipient, "error", err)
		return nil, apperrors.Internal("Failed to render calendar event", err)
	}

	s.cfg.Log.Info("Calendar invitation delivered (simulated)",
		"from", emailSender,
		"to", req.Recipient,
		"subject", "Calendar Invitation: "+req.Title,
		"attachment", "invite.ics",
		"ics_bytes", len(ics),
	)

	return &model.NotificationResult{Sent: true}, nil
}

// RenderICS builds a minimal single-event VCALENDAR. Timestamps are
// floating local times on purpose: the schedule is wall-clock based
// and carries no timezone.
func RenderICS(req *model.CalendarEventRequest, now time.Time) (string, error) {
	start, err := time.Parse(model.DateLayout+" "+model.ClockLayout, req.Date+" "+req.StartTime)
	if err != nil {
		return "", fmt.Errorf("invalid event start: %w", err)
	}
	end, err := time.Parse(model.DateLayout+" "+model.ClockLayout, req.Date+" "+req.EndTime)
	if err != nil {
		return "", fmt.Errorf("invalid event end: %w", err)
	}

	const stampLayout = "20060102T150405"

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//Roombook//Calendar Notifier//EN",
		"BEGIN:VEVENT",
		fmt.Sprintf("UID:%s-%s", req.Recipient, start.Format(stampLayout)),
		fmt.Sprintf("DTSTAMP:%sZ", now.Format(stampLayout)),
		fmt.Sprintf("DTSTART:%s", start.Format(stampLayout)),
		fmt.Sprintf("DTEND:%s", end.Format(stampLayout)),
		fmt.Sprintf("SUMMARY:%s", req.Title),
		fmt.Sprintf("DESCRIPTION:%s", req.Description),
		fmt.Sprintf("LOCATION:%s", req.Location),
		fmt.Sprintf("ORGANIZER;CN=%s:MAILTO:%s", req.Organizer, req.Recipient),
		"END:VEVENT",
		"END:VCALENDAR",
	}

	out := ""
	for _, line := range lines {
		out += line + "\r\n"
	}
	return out, nil
}
