package main

import (
	"context"

	"roombook/internal/rooms/handler"
	"roombook/internal/rooms/repository"
	"roombook/internal/rooms/service"
	"roombook/pkg/app"
	"roombook/pkg/client"
	"roombook/pkg/config"
	"roombook/pkg/health"
)

const (
	ServiceName = "rooms"
	DefaultPort = "8001"
)

func main() {
	cfg := config.Load(ServiceName, DefaultPort)

	cfg.Log.Info("Starting Room Directory service")

	apiClient := client.NewClient()
	apiClient.SetMongo(cfg.Log, cfg.MongoURI, cfg.MongoConnTimeout)

	roomRepo := repository.NewMongoRoomRepository(cfg, apiClient.Mongo)
	roomService := service.NewRoomService(roomRepo, cfg)

	if err := roomService.EnsureSeeded(context.Background()); err != nil {
		cfg.Log.Fatal("Failed to seed room collection", "error", err)
	}

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewRoomHandler(roomService, cfg.Log),
		health.NewHandler(apiClient.Mongo, cfg.Log),
	)
	serverApp.Run()
}
