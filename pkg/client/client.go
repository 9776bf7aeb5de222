package client

import (
	"context"
	"time"

	"roombook/pkg/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Client bundles every outbound dependency a service can hold. Each
// service wires only the setters it needs from main.
type Client struct {
	Mongo        *mongo.Client
	Rooms        *RoomClient
	Availability *AvailabilityClient
	Bookings     *BookingClient
	Email        *EmailClient
	Calendar     *CalendarClient
}

func NewClient() *Client {
	return &Client{}
}

func (c *Client) SetMongo(log *logger.Logger, mongoURI string, mongoConnTimeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoConnTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB",
			"error", err,
			"uri", mongoURI,
		)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB", "error", err)
	}

	log.Info("Successfully connected to MongoDB")
	c.Mongo = client
}

func (c *Client) SetRoomClient(baseURL string, timeout time.Duration) {
	c.Rooms = NewRoomClient(baseURL, timeout)
}

func (c *Client) SetAvailabilityClient(baseURL string, timeout time.Duration) {
	c.Availability = NewAvailabilityClient(baseURL, timeout)
}

func (c *Client) SetBookingClient(baseURL string, timeout time.Duration) {
	c.Bookings = NewBookingClient(baseURL, timeout)
}

func (c *Client) SetEmailClient(baseURL string, timeout time.Duration) {
	c.Email = NewEmailClient(baseURL, timeout)
}

func (c *Client) SetCalendarClient(baseURL string, timeout time.Duration) {
	c.Calendar = NewCalendarClient(baseURL, timeout)
}
