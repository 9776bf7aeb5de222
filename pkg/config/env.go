package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvDownstreamTimeout  = "DOWNSTREAM_TIMEOUT"
	EnvHealthProbeTimeout = "HEALTH_PROBE_TIMEOUT"

	EnvRoomsURL            = "ROOMS_URL"
	EnvAvailabilityURL     = "AVAILABILITY_URL"
	EnvBookingsURL         = "BOOKINGS_URL"
	EnvEmailNotifierURL    = "EMAIL_NOTIFIER_URL"
	EnvCalendarNotifierURL = "CALENDAR_NOTIFIER_URL"

	EnvKafkaBrokers      = "KAFKA_BROKERS"
	EnvKafkaBookingTopic = "KAFKA_BOOKING_TOPIC"
	EnvKafkaGroupID      = "KAFKA_GROUP_ID"
)
