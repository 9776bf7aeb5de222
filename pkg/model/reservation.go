package model

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// ReservationRequest is the unit of work entering the gateway. Immutable
// once accepted; the date is a calendar day and start/end are same-day
// wall-clock times.
type ReservationRequest struct {
	RoomID         string `json:"room_id" validate:"required,min=1,max=50"`
	Date           string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime      string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime        string `json:"end_time" validate:"required,datetime=15:04"`
	RequesterName  string `json:"requester_name" validate:"required,min=1,max=100"`
	RequesterEmail string `json:"requester_email" validate:"required,email"`
}

// IntervalValid reports whether start strictly precedes end. Zero-padded
// HH:MM strings compare correctly as text.
func (r *ReservationRequest) IntervalValid() bool {
	return r.StartTime < r.EndTime
}

type NotificationOutcome struct {
	Channel string `json:"channel"`
	Sent    bool   `json:"sent"`
	Reason  string `json:"reason,omitempty"`
}

const (
	ChannelEmail    = "email"
	ChannelCalendar = "calendar"
)

// ReservationResult is the consolidated response of one saga run: the
// committed booking plus the outcome of each best-effort notification.
type ReservationResult struct {
	BookingID string              `json:"booking_id"`
	RoomID    string              `json:"room_id"`
	RoomName  string              `json:"room_name"`
	Date      string              `json:"date"`
	StartTime string              `json:"start_time"`
	EndTime   string              `json:"end_time"`
	Requester string              `json:"requester"`
	Email     NotificationOutcome `json:"email"`
	Calendar  NotificationOutcome `json:"calendar"`
}
