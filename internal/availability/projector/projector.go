package projector

import (
	"context"
	"fmt"

	"roombook/internal/availability/service"
	"roombook/pkg/kafka"
	"roombook/pkg/logger"
	"roombook/pkg/model"
)

// Projector consumes booking.created events and applies them to the
// Availability Checker's reservation projection.
type Projector struct {
	service service.AvailabilityService
	log     *logger.Logger
}

func NewProjector(service service.AvailabilityService, log *logger.Logger) *Projector {
	return &Projector{
		service: service,
		log:     log,
	}
}

func (p *Projector) HandleMessage(ctx context.Context, msg kafka.Message) error {
	var event model.BookingCreatedEvent
	if err := msg.DecodeValue(&event); err != nil {
		p.log.Error("Failed to decode booking event",
			"event_id", msg.GetEventID(),
			"offset", msg.Offset,
			"error", err,
		)
		return fmt.Errorf("decode booking event: %w", err)
	}

	if err := p.service.RecordBooking(ctx, &event); err != nil {
		return fmt.Errorf("record booking %s: %w", event.BookingID, err)
	}

	return nil
}
