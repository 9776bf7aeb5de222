package model

import "time"

// BookingRecord is created exactly once per successful commit by the
// Booking Ledger and never mutated afterward.
type BookingRecord struct {
	ID             string    `json:"id" bson:"_id"`
	RoomID         string    `json:"room_id" bson:"room_id" validate:"required,min=1,max=50"`
	Date           string    `json:"date" bson:"date" validate:"required,datetime=2006-01-02"`
	StartTime      string    `json:"start_time" bson:"start_time" validate:"required,datetime=15:04"`
	EndTime        string    `json:"end_time" bson:"end_time" validate:"required,datetime=15:04"`
	RequesterName  string    `json:"requester_name" bson:"requester_name" validate:"required,min=1,max=100"`
	RequesterEmail string    `json:"requester_email" bson:"requester_email" validate:"required,email"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}

// BookingCreatedEvent is published by the Booking Ledger after a commit
// and consumed by the Availability Checker to update its projection.
type BookingCreatedEvent struct {
	BookingID   string    `json:"booking_id"`
	RoomID      string    `json:"room_id"`
	Date        string    `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	CommittedAt time.Time `json:"committed_at"`
}
