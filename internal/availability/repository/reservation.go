package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"roombook/pkg/config"
	"roombook/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "reservations"
)

// ReservationRepository is the Availability Checker's private view of
// committed booking intervals. Only the booking.created projector
// writes to it.
type ReservationRepository interface {
	FindOverlapping(ctx context.Context, roomID, date, startTime, endTime string) (*model.Reservation, error)
	Upsert(ctx context.Context, reservation *model.Reservation) error
	EnsureIndexes(ctx context.Context) error
}

type mongoReservationRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoReservationRepository(cfg *config.Config, mongoClient *mongo.Client) ReservationRepository {
	db := mongoClient.Database(cfg.MongoDatabaseName)
	return &mongoReservationRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoReservationRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// FindOverlapping returns one reservation whose half-open interval
// intersects [startTime, endTime) on the given room and day, or nil
// when the slot is free. Zero-padded HH:MM strings order correctly
// under lexicographic comparison, so the overlap test is a plain
// range query.
func (r *mongoReservationRepository) FindOverlapping(ctx context.Context, roomID, date, startTime, endTime string) (*model.Reservation, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	filter := bson.M{
		"room_id":    roomID,
		"date":       date,
		"start_time": bson.M{"$lt": endTime},
		"end_time":   bson.M{"$gt": startTime},
	}

	var reservation model.Reservation
	err := r.collection.FindOne(ctx, filter).Decode(&reservation)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query overlapping reservations: %w", err)
	}

	return &reservation, nil
}

func (r *mongoReservationRepository) Upsert(ctx context.Context, reservation *model.Reservation) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	filter := bson.M{"_id": reservation.BookingID}
	update := bson.M{"$set": reservation}
	opts := options.Update().SetUpsert(true)

	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert reservation: %w", err)
	}
	return nil
}

func (r *mongoReservationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	index := mongo.IndexModel{
		Keys: bson.D{
			{Key: "room_id", Value: 1},
			{Key: "date", Value: 1},
			{Key: "start_time", Value: 1},
		},
	}

	if _, err := r.collection.Indexes().CreateOne(ctx, index); err != nil {
		return fmt.Errorf("failed to create reservation indexes: %w", err)
	}
	return nil
}
