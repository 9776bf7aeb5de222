package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "roombook"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultLogLevel = "info"

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	// Per-call budget for each downstream collaborator. There is no
	// end-to-end deadline across a saga run.
	DefaultDownstreamTimeout = 5 * time.Second

	DefaultHealthProbeTimeout = 2 * time.Second

	DefaultRoomsURL            = "http://localhost:8001"
	DefaultAvailabilityURL     = "http://localhost:8002"
	DefaultBookingsURL         = "http://localhost:8003"
	DefaultEmailNotifierURL    = "http://localhost:8004"
	DefaultCalendarNotifierURL = "http://localhost:8005"

	DefaultKafkaBookingTopic = "booking.created"
	DefaultKafkaGroupID      = "availability-projection"
)
