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
	ServiceName = "notify-email"
	DefaultPort = "8004"
)

func main() {
	cfg := config.Load(ServiceName, DefaultPort)

	cfg.Log.Info("Starting Email Notifier service")

	emailService := service.NewEmailService(validator.NewNotifyValidator(cfg.Log), cfg)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewEmailHandler(emailService, cfg.Log),
		health.NewHandler(nil, cfg.Log),
	)
	serverApp.Run()
}
