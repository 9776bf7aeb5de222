package model

type AvailabilityRequest struct {
	RoomID    string `json:"room_id" validate:"required,min=1,max=50"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string `json:"end_time" validate:"required,datetime=15:04"`
}

type AvailabilityVerdict struct {
	RoomID    string `json:"room_id"`
	Available bool   `json:"available"`
	Reason    string `json:"reason"`
}

// Reservation is the Availability Checker's private projection of a
// committed booking interval. Fed from booking.created events; never
// written by any other service.
type Reservation struct {
	BookingID string `json:"booking_id" bson:"_id"`
	RoomID    string `json:"room_id" bson:"room_id"`
	Date      string `json:"date" bson:"date"`
	StartTime string `json:"start_time" bson:"start_time"`
	EndTime   string `json:"end_time" bson:"end_time"`
}
