package main

import (
	"roombook/internal/notify/handler"
	"roombook/internal/notify/service"
	"roombook/internal/notify/validator"
	"roombook/pkg/app"
	"roombook/pkg/config"
	"roombook/pkg/health"
)

const (
	ServiceName = "notify-calendar"
	DefaultPort = "8005"
)

func main() {
	cfg := config.Load(ServiceName, DefaultPort)

	cfg.Log.Info("Starting Calendar Notifier service")

	calendarService := service.NewCalendarService(validator.NewNotifyValidator(cfg.Log), cfg)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewCalendarHandler(calendarService, cfg.Log),
		health.NewHandler(nil, cfg.Log),
	)
	serverApp.Run()
}
