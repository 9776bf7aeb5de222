package service

import (
	"context"
	"fmt"

	"roombook/internal/availability/repository"
	"roombook/internal/availability/validator"
	"roombook/pkg/config"
	apperrors "roombook/pkg/errors"
	"roombook/pkg/model"
)

type AvailabilityService interface {
	Check(ctx context.Context, req *model.AvailabilityRequest) (*model.AvailabilityVerdict, error)
	RecordBooking(ctx context.Context, event *model.BookingCreatedEvent) error
}

type availabilityService struct {
	repo      repository.ReservationRepository
	validator *validator.AvailabilityValidator
	cfg       *config.Config
}

func NewAvailabilityService(
	repo repository.ReservationRepository,
	validator *validator.AvailabilityValidator,
	cfg *config.Config,
) AvailabilityService {
	return &availabilityService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

// Check renders the authoritative verdict for a room and time slot.
// An occupied slot is a negative verdict, not an error; errors are
// reserved for malformed requests and storage failures.
func (s *availabilityService) Check(ctx context.Context, req *model.AvailabilityRequest) (*model.AvailabilityVerdict, error) {
	if err := s.validator.Validate(req); err != nil {
		s.cfg.Log.Warn("Availability check validation failed", "error", err)
		return nil, apperrors.Validation(err.Error())
	}

	existing, err := s.repo.FindOverlapping(ctx, req.RoomID, req.Date, req.StartTime, req.EndTime)
	if err != nil {
		s.cfg.Log.Error("Failed to query reservations", "room_id", req.RoomID, "error", err)
		return nil, apperrors.Internal("Failed to check availability", err)
	}

	if existing != nil {
		return &model.AvailabilityVerdict{
			RoomID:    req.RoomID,
			Available: false,
			Reason:    fmt.Sprintf("Room occupied between %s and %s", existing.StartTime, existing.EndTime),
		}, nil
	}

	return &model.AvailabilityVerdict{
		RoomID:    req.RoomID,
		Available: true,
		Reason:    "Room available at the requested time",
	}, nil
}

// RecordBooking folds a committed booking into the projection. Upsert
// keyed by booking id keeps redelivered events idempotent.
func (s *availabilityService) RecordBooking(ctx context.Context, event *model.BookingCreatedEvent) error {
	if event.BookingID == "" || event.RoomID == "" {
		return apperrors.Validation("Booking event is missing booking_id or room_id")
	}

	reservation := &model.Reservation{
		BookingID: event.BookingID,
		RoomID:    event.RoomID,
		Date:      event.Date,
		StartTime: event.StartTime,
		EndTime:   event.EndTime,
	}

	if err := s.repo.Upsert(ctx, reservation); err != nil {
		s.cfg.Log.Error("Failed to record booking in projection",
			"booking_id", event.BookingID,
			"room_id", event.RoomID,
			"error", err,
		)
		return apperrors.Internal("Failed to record booking", err)
	}

	s.cfg.Log.Info("Booking recorded in availability projection",
		"booking_id", event.BookingID,
		"room_id", event.RoomID,
		"date", event.Date,
	)
	return nil
}
