package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"cleansweep/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AssignCleaner performs the conflict recheck and the assignment commit as a
// single Mongo transaction. Two concurrent assignments targeting overlapping
// windows for the same cleaner serialize at the store, so at most one can
// succeed; in-process locking would not survive multiple handler instances.
func (r *MongoBookingRepo) AssignCleaner(ctx context.Context, bookingID, cleanerID string, bufferMinutes int) (*models.Booking, error) {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	var assigned models.Booking

	txnFn := func(sc mongo.SessionContext) error {
		var booking models.Booking
		if err := r.coll.FindOne(sc, bson.M{"id": bookingID}).Decode(&booking); err != nil {
			if err == mongo.ErrNoDocuments {
				return ErrNotFound
			}
			return fmt.Errorf("failed to fetch booking %s: %w", bookingID, err)
		}
		if booking.Status != models.BookingPending || booking.CleanerID != "" {
			return ErrNotAssignable
		}

		// Recheck the cleaner's calendar inside the transaction. An earlier
		// "available cleaners" answer may be stale by now.
		cursor, err := r.coll.Find(sc, bson.M{
			"cleaner_id": cleanerID,
			"status":     bson.M{"$ne": models.BookingCancelled},
		})
		if err != nil {
			return fmt.Errorf("failed to fetch cleaner %s bookings: %w", cleanerID, err)
		}
		candidate := booking.Window()
		for cursor.Next(sc) {
			var existing models.Booking
			if err := cursor.Decode(&existing); err != nil {
				cursor.Close(sc)
				return fmt.Errorf("failed to decode booking: %w", err)
			}
			if candidate.ConflictsWith(existing.Window(), bufferMinutes) {
				cursor.Close(sc)
				return ErrScheduleConflict
			}
		}
		cursor.Close(sc)

		filter := bson.M{
			"id":     bookingID,
			"status": models.BookingPending,
			"$or": bson.A{
				bson.M{"cleaner_id": bson.M{"$exists": false}},
				bson.M{"cleaner_id": ""},
			},
		}
		update := bson.M{"$set": bson.M{
			"cleaner_id": cleanerID,
			"status":     models.BookingConfirmed,
			"updated_at": time.Now(),
		}}
		res, err := r.coll.UpdateOne(sc, filter, update)
		if err != nil {
			return fmt.Errorf("failed to assign cleaner to booking %s: %w", bookingID, err)
		}
		if res.MatchedCount == 0 {
			return ErrNotAssignable
		}

		assigned = booking
		assigned.CleanerID = cleanerID
		assigned.Status = models.BookingConfirmed
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return nil, err
	}

	return &assigned, nil
}
