package model

type EmailRequest struct {
	Recipient string            `json:"recipient" validate:"required,email"`
	Subject   string            `json:"subject" validate:"required,min=1,max=200"`
	Body      string            `json:"body" validate:"required"`
	Context   map[string]string `json:"context,omitempty"`
}

type CalendarEventRequest struct {
	Recipient   string `json:"recipient" validate:"required,email"`
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	Location    string `json:"location" validate:"omitempty,max=200"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime   string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime     string `json:"end_time" validate:"required,datetime=15:04"`
	Organizer   string `json:"organizer" validate:"required,min=1,max=100"`
}

type NotificationResult struct {
	Sent   bool   `json:"sent"`
	Reason string `json:"reason,omitempty"`
}
