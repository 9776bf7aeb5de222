package main

import (
	"context"
	"errors"

	"roombook/internal/availability/handler"
	"roombook/internal/availability/projector"
	"roombook/internal/availability/repository"
	"roombook/internal/availability/service"
	"roombook/internal/availability/validator"
	"roombook/pkg/app"
	"roombook/pkg/client"
	"roombook/pkg/config"
	"roombook/pkg/health"
	"roombook/pkg/kafka"
)

const (
	ServiceName = "availability"
	DefaultPort = "8002"
)

func main() {
	cfg := config.Load(ServiceName, DefaultPort)

	cfg.Log.Info("Starting Availability Checker service")

	apiClient := client.NewClient()
	apiClient.SetMongo(cfg.Log, cfg.MongoURI, cfg.MongoConnTimeout)

	reservationRepo := repository.NewMongoReservationRepository(cfg, apiClient.Mongo)
	if err := reservationRepo.EnsureIndexes(context.Background()); err != nil {
		cfg.Log.Fatal("Failed to create reservation indexes", "error", err)
	}

	availabilityService := service.NewAvailabilityService(
		reservationRepo,
		validator.NewAvailabilityValidator(cfg.Log),
		cfg,
	)

	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	consumer := startProjector(consumerCtx, cfg, availabilityService)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewAvailabilityHandler(availabilityService, cfg.Log),
		health.NewHandler(apiClient.Mongo, cfg.Log),
	)
	serverApp.Run()

	stopConsumer()
	if consumer != nil {
		if err := consumer.Close(); err != nil {
			cfg.Log.Error("Failed to close Kafka consumer", "error", err)
		}
	}
}

// startProjector begins consuming booking.created events. Without
// brokers the projection simply stays empty, which still yields valid
// (always-available) verdicts for a standalone deployment.
func startProjector(ctx context.Context, cfg *config.Config, svc service.AvailabilityService) *kafka.Consumer {
	if len(cfg.KafkaBrokers) == 0 {
		cfg.Log.Warn("No Kafka brokers configured, booking projection disabled")
		return nil
	}

	p := projector.NewProjector(svc, cfg.Log)
	consumer, err := kafka.NewConsumer(cfg.KafkaBrokers, cfg.KafkaBookingTopic, cfg.KafkaGroupID, p.HandleMessage)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka consumer", "error", err)
	}

	go func() {
		cfg.Log.Info("Booking projection consumer started",
			"topic", cfg.KafkaBookingTopic,
			"group_id", cfg.KafkaGroupID,
		)
		if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			cfg.Log.Error("Booking projection consumer stopped", "error", err)
		}
	}()

	return consumer
}
