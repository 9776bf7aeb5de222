package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	bookingserrors "roombook/internal/bookings/errors"
	"roombook/internal/bookings/repository"
	"roombook/internal/bookings/validator"
	"roombook/pkg/config"
	apperrors "roombook/pkg/errors"
	"roombook/pkg/kafka"
	"roombook/pkg/model"

	"github.com/google/uuid"
)

type BookingService interface {
	Create(ctx context.Context, req *model.ReservationRequest) (*model.BookingRecord, error)
	GetByID(ctx context.Context, id string) (*model.BookingRecord, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.BookingRecord, int64, error)
}

// EventPublisher is the slice of the Kafka producer the ledger needs.
type EventPublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

type bookingService struct {
	repo      repository.BookingRepository
	validator *validator.BookingValidator
	publisher EventPublisher
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	validator *validator.BookingValidator,
	publisher EventPublisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
	}
}

// Create commits a booking exactly once. The overlap pre-check gives a
// descriptive conflict; the unique index behind repo.Create closes the
// race two concurrent commits could otherwise win together.
func (s *bookingService) Create(ctx context.Context, req *model.ReservationRequest) (*model.BookingRecord, error) {
	if err := s.validator.Validate(req); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return nil, apperrors.Validation(err.Error())
	}

	existing, err := s.repo.FindOverlapping(ctx, req.RoomID, req.Date, req.StartTime, req.EndTime)
	if err != nil {
		s.cfg.Log.Error("Failed to check existing bookings", "room_id", req.RoomID, "error", err)
		return nil, apperrors.Internal("Failed to check existing bookings", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict(fmt.Sprintf(
			"Booking time overlaps with existing booking (%s - %s)",
			existing.StartTime, existing.EndTime,
		))
	}

	booking := &model.BookingRecord{
		ID:             uuid.New().String(),
		RoomID:         req.RoomID,
		Date:           req.Date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		RequesterName:  req.RequesterName,
		RequesterEmail: req.RequesterEmail,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		if errors.Is(err, bookingserrors.ErrTimeConflict) {
			return nil, apperrors.Conflict("Room already booked for the requested time")
		}
		s.cfg.Log.Error("Failed to create booking", "room_id", req.RoomID, "error", err)
		return nil, apperrors.Internal("Failed to create booking", err)
	}

	s.publishCreated(ctx, booking)

	s.cfg.Log.Info("Booking created successfully",
		"id", booking.ID,
		"room_id", booking.RoomID,
		"date", booking.Date,
		"start_time", booking.StartTime,
	)
	return booking, nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.BookingRecord, error) {
	if id == "" {
		return nil, apperrors.Validation("Booking ID cannot be empty")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		return nil, apperrors.Internal("Failed to retrieve booking", err)
	}

	return booking, nil
}

func (s *bookingService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.BookingRecord, int64, error) {
	var count int64
	var bookings []*model.BookingRecord
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count bookings", "error", errCount)
			errCount = apperrors.Internal("Failed to count bookings", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		bookings, errFind = s.repo.FindAll(ctx, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list bookings", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve bookings", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return bookings, count, nil
}

// publishCreated emits booking.created for the availability projection.
// Best effort: the commit already happened and must not be unwound for
// an eventing failure.
func (s *bookingService) publishCreated(ctx context.Context, booking *model.BookingRecord) {
	if s.publisher == nil {
		return
	}

	event := model.BookingCreatedEvent{
		BookingID:   booking.ID,
		RoomID:      booking.RoomID,
		Date:        booking.Date,
		StartTime:   booking.StartTime,
		EndTime:     booking.EndTime,
		CommittedAt: booking.CreatedAt,
	}

	msg := kafka.NewMessage().
		WithKey(booking.RoomID).
		WithValue(event).
		WithEventType("booking.created").
		WithSource("bookings").
		Build()

	if err := s.publisher.Publish(ctx, msg); err != nil {
		s.cfg.Log.Warn("Failed to publish booking.created event",
			"booking_id", booking.ID,
			"error", err,
		)
	}
}
