package booking

import (
	"context"

	"cleansweep/models"
	"cleansweep/utils"

	"go.uber.org/zap"
)

// allowedSources maps a target status to the statuses a booking may move
// from. Any pairing absent from this table is rejected; confirmation via
// assignment goes through Assign, which performs the same PENDING guard at
// the store.
var allowedSources = map[models.BookingStatus][]models.BookingStatus{
	models.BookingConfirmed:  {models.BookingPending},
	models.BookingInProgress: {models.BookingConfirmed},
	models.BookingCompleted:  {models.BookingInProgress},
	models.BookingCancelled:  {models.BookingPending, models.BookingConfirmed},
}

// TransitionStatus enforces the booking lifecycle. Illegal pairings return a
// TransitionError naming the required predecessor state; they are never
// coerced to a nearby legal state.
func (s *DefaultBookingService) TransitionStatus(ctx context.Context, bookingID string, target models.BookingStatus) error {
	booking, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}

	sources, ok := allowedSources[target]
	if !ok {
		return &TransitionError{From: booking.Status, To: target}
	}
	if !containsStatus(sources, booking.Status) {
		return &TransitionError{From: booking.Status, To: target, Required: sources}
	}

	if err := s.Repo.UpdateStatus(ctx, bookingID, booking.Status, target); err != nil {
		return err
	}

	utils.GetLogger().Info("booking status changed",
		zap.String("bookingID", bookingID),
		zap.String("from", string(booking.Status)),
		zap.String("to", string(target)))
	return nil
}

// CancelBooking transitions the booking to CANCELLED, after which its window
// no longer counts for conflicts.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, bookingID string) error {
	return s.TransitionStatus(ctx, bookingID, models.BookingCancelled)
}

func containsStatus(statuses []models.BookingStatus, status models.BookingStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}
