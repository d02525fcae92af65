package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"cleansweep/database"
	"cleansweep/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	coll := database.MongoClient.Database("cleansweep").Collection("bookings")
	repo := &MongoBookingRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("warning: failed to ensure booking indexes: %v\n", err)
	}
	return repo
}

func (r *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctxWithTimeout, booking); err != nil {
		return fmt.Errorf("error creating booking: %w", err)
	}
	return nil
}

func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctxWithTimeout, bson.M{"id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return &booking, nil
}

// UpdateStatus flips the status only when the stored document still carries
// the expected current status. A matched count of zero means either the
// booking is gone or another writer got there first.
func (r *MongoBookingRepo) UpdateStatus(ctx context.Context, id string, from, to models.BookingStatus) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": from}
	update := bson.M{"$set": bson.M{"status": to, "updated_at": time.Now()}}
	res, err := r.coll.UpdateOne(ctxWithTimeout, filter, update)
	if err != nil {
		return fmt.Errorf("error updating booking %s status: %w", id, err)
	}
	if res.MatchedCount == 0 {
		count, countErr := r.coll.CountDocuments(ctxWithTimeout, bson.M{"id": id})
		if countErr == nil && count == 0 {
			return ErrNotFound
		}
		return ErrStatusChanged
	}
	return nil
}
