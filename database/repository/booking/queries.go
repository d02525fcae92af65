package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"cleansweep/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (r *MongoBookingRepo) ListByStatus(ctx context.Context, status models.BookingStatus) ([]models.Booking, error) {
	return r.list(ctx, bson.M{"status": status})
}

func (r *MongoBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

// ListLiveByCleaner returns every booking that still occupies the cleaner's
// calendar. Cancelled bookings are excluded; all other statuses count.
func (r *MongoBookingRepo) ListLiveByCleaner(ctx context.Context, cleanerID string) ([]models.Booking, error) {
	return r.list(ctx, bson.M{
		"cleaner_id": cleanerID,
		"status":     bson.M{"$ne": models.BookingCancelled},
	})
}

func (r *MongoBookingRepo) CountFutureLiveByCleaner(ctx context.Context, cleanerID string, after time.Time) (int64, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"cleaner_id": cleanerID,
		"status":     bson.M{"$ne": models.BookingCancelled},
		"start_time": bson.M{"$gt": after},
	}
	count, err := r.coll.CountDocuments(ctxWithTimeout, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count future bookings for cleaner %s: %w", cleanerID, err)
	}
	return count, nil
}

func (r *MongoBookingRepo) list(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctxWithTimeout, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var bookings []models.Booking
	for cursor.Next(ctxWithTimeout) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}
