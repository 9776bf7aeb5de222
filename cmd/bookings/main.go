package main

import (
	"context"

	"roombook/internal/bookings/handler"
	"roombook/internal/bookings/repository"
	"roombook/internal/bookings/service"
	"roombook/internal/bookings/validator"
	"roombook/pkg/app"
	"roombook/pkg/client"
	"roombook/pkg/config"
	"roombook/pkg/health"
	"roombook/pkg/kafka"
)

const (
	ServiceName = "bookings"
	DefaultPort = "8003"
)

func main() {
	cfg := config.Load(ServiceName, DefaultPort)

	cfg.Log.Info("Starting Booking Ledger service")

	apiClient := client.NewClient()
	apiClient.SetMongo(cfg.Log, cfg.MongoURI, cfg.MongoConnTimeout)

	bookingRepo := repository.NewMongoBookingRepository(cfg, apiClient.Mongo)
	if err := bookingRepo.EnsureIndexes(context.Background()); err != nil {
		cfg.Log.Fatal("Failed to create booking indexes", "error", err)
	}

	bookingService := service.NewBookingService(
		bookingRepo,
		validator.NewBookingValidator(cfg.Log),
		initPublisher(cfg),
		cfg,
	)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewBookingHandler(bookingService, cfg.Log),
		health.NewHandler(apiClient.Mongo, cfg.Log),
	)
	serverApp.Run()
}

// initPublisher builds the booking.created producer. Eventing is best
// effort, so a missing broker configuration disables it instead of
// blocking startup.
func initPublisher(cfg *config.Config) service.EventPublisher {
	if len(cfg.KafkaBrokers) == 0 {
		cfg.Log.Warn("No Kafka brokers configured, booking events disabled")
		return nil
	}

	producer, err := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaBookingTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}

	cfg.Log.Info("Booking event producer initialized", "topic", cfg.KafkaBookingTopic)
	return producer
}
