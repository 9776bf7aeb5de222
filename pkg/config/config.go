package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"roombook/pkg/logger"
)

type Config struct {
	MongoURI          string
	MongoDatabaseName string
	MongoConnTimeout  time.Duration

	Port string

	RequestTimeout time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	DownstreamTimeout  time.Duration
	HealthProbeTimeout time.Duration

	RoomsURL            string
	AvailabilityURL     string
	BookingsURL         string
	EmailNotifierURL    string
	CalendarNotifierURL string

	KafkaBrokers      []string
	KafkaBookingTopic string
	KafkaGroupID      string

	Log *logger.Logger
}

func Load(serviceName, defaultPort string) *Config {
	cfg := &Config{
		MongoURI:          getEnvStr(EnvMongoURI, DefaultMongoURI),
		MongoDatabaseName: getEnvStr(EnvMongoDatabaseName, DefaultMongoDatabaseName),
		MongoConnTimeout:  getEnvDuration(EnvMongoConnTimeout, DefaultMongoConnTimeout),

		Port: getEnvStr(EnvPort, defaultPort),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		DownstreamTimeout:  getEnvDuration(EnvDownstreamTimeout, DefaultDownstreamTimeout),
		HealthProbeTimeout: getEnvDuration(EnvHealthProbeTimeout, DefaultHealthProbeTimeout),

		RoomsURL:            getEnvStr(EnvRoomsURL, DefaultRoomsURL),
		AvailabilityURL:     getEnvStr(EnvAvailabilityURL, DefaultAvailabilityURL),
		BookingsURL:         getEnvStr(EnvBookingsURL, DefaultBookingsURL),
		EmailNotifierURL:    getEnvStr(EnvEmailNotifierURL, DefaultEmailNotifierURL),
		CalendarNotifierURL: getEnvStr(EnvCalendarNotifierURL, DefaultCalendarNotifierURL),

		KafkaBrokers:      getEnvList(EnvKafkaBrokers),
		KafkaBookingTopic: getEnvStr(EnvKafkaBookingTopic, DefaultKafkaBookingTopic),
		KafkaGroupID:      getEnvStr(EnvKafkaGroupID, DefaultKafkaGroupID),

		Log: logger.New(logger.Config{
			Level:     getEnvStr(EnvLogLevel, DefaultLogLevel),
			Format:    logger.JSON,
			AddSource: true,
			Service:   serviceName,
		}),
	}

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

func (cfg *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if cfg.MongoURI == "" {
		errors = append(errors, "MongoURI cannot be empty")
	} else if !regexp.MustCompile(`^mongodb(\+srv)?://`).MatchString(cfg.MongoURI) {
		errors = append(errors, fmt.Sprintf("MongoURI must start with 'mongodb://' or 'mongodb+srv://', got: %s", cfg.MongoURI))
	}

	if cfg.MongoDatabaseName == "" {
		errors = append(errors, "MongoDatabaseName cannot be empty")
	}

	urlFields := map[string]string{
		"RoomsURL":            cfg.RoomsURL,
		"AvailabilityURL":     cfg.AvailabilityURL,
		"BookingsURL":         cfg.BookingsURL,
		"EmailNotifierURL":    cfg.EmailNotifierURL,
		"CalendarNotifierURL": cfg.CalendarNotifierURL,
	}
	for name, value := range urlFields {
		if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
			errors = append(errors, fmt.Sprintf("%s must start with 'http://' or 'https://', got: %s", name, value))
		}
	}

	if cfg.MongoConnTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("MongoConnTimeout must be positive, got: %s", cfg.MongoConnTimeout))
	}
	if cfg.RequestTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.ReadTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}
	if cfg.DownstreamTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("DownstreamTimeout must be positive, got: %s", cfg.DownstreamTimeout))
	}
	if cfg.HealthProbeTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("HealthProbeTimeout must be positive, got: %s", cfg.HealthProbeTimeout))
	}
	if cfg.MaxRequestSize <= 0 {
		errors = append(errors, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}

	if len(errors) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"mongo_uri", redactMongoURI(cfg.MongoURI),
		"mongo_database", cfg.MongoDatabaseName,
		"mongo_conn_timeout", cfg.MongoConnTimeout,
		"port", cfg.Port,
		"request_timeout", cfg.RequestTimeout,
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
		"downstream_timeout", cfg.DownstreamTimeout,
		"health_probe_timeout", cfg.HealthProbeTimeout,
		"rooms_url", cfg.RoomsURL,
		"availability_url", cfg.AvailabilityURL,
		"bookings_url", cfg.BookingsURL,
		"email_notifier_url", cfg.EmailNotifierURL,
		"calendar_notifier_url", cfg.CalendarNotifierURL,
		"kafka_brokers", strings.Join(cfg.KafkaBrokers, ","),
		"kafka_booking_topic", cfg.KafkaBookingTopic,
		"kafka_group_id", cfg.KafkaGroupID,
	)
}

func redactMongoURI(uri string) string {
	credentialRegex := regexp.MustCompile(`(mongodb(\+srv)?://)[^:]+:[^@]+@`)
	return credentialRegex.ReplaceAllString(uri, "${1}***:***@")
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
