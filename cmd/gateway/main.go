package main

import (
	"roombook/internal/gateway/handler"
	"roombook/internal/gateway/health"
	"roombook/internal/gateway/saga"
	"roombook/internal/gateway/validator"
	"roombook/pkg/app"
	"roombook/pkg/client"
	"roombook/pkg/config"
)

const (
	ServiceName = "gateway"
	DefaultPort = "8010"
)

func main() {
	cfg := config.Load(ServiceName, DefaultPort)

	cfg.Log.Info("Starting Gateway service")

	apiClient := client.NewClient()
	apiClient.SetRoomClient(cfg.RoomsURL, cfg.DownstreamTimeout)
	apiClient.SetAvailabilityClient(cfg.AvailabilityURL, cfg.DownstreamTimeout)
	apiClient.SetBookingClient(cfg.BookingsURL, cfg.DownstreamTimeout)
	apiClient.SetEmailClient(cfg.EmailNotifierURL, cfg.DownstreamTimeout)
	apiClient.SetCalendarClient(cfg.CalendarNotifierURL, cfg.DownstreamTimeout)

	orchestrator := saga.NewOrchestrator(
		apiClient.Rooms,
		apiClient.Availability,
		apiClient.Bookings,
		apiClient.Email,
		apiClient.Calendar,
		validator.NewReservationValidator(cfg.Log),
		cfg.Log,
	)

	aggregator := health.NewAggregator(cfg.HealthProbeTimeout, cfg.Log)
	aggregator.Register(client.RoomDirectoryName, cfg.RoomsURL)
	aggregator.Register(client.AvailabilityCheckerName, cfg.AvailabilityURL)
	aggregator.Register(client.BookingLedgerName, cfg.BookingsURL)
	aggregator.Register(client.EmailNotifierName, cfg.EmailNotifierURL)
	aggregator.Register(client.CalendarNotifierName, cfg.CalendarNotifierURL)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewReservationHandler(orchestrator, cfg.Log),
		handler.NewHealthHandler(aggregator, cfg.Log),
	)
	serverApp.Run()
}
