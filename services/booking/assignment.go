package booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "cleansweep/database/repository/booking"
	"cleansweep/models"
	"cleansweep/utils"

	"go.uber.org/zap"
)

// Assign confirms a booking for a cleaner. The cleaner must be ACTIVE, and
// the conflict check is redone at assignment time inside a store transaction:
// an "available cleaners" answer obtained earlier may be stale because time
// has passed or another assignment landed concurrently.
func (s *DefaultBookingService) Assign(ctx context.Context, bookingID, cleanerID string) (*models.Booking, error) {
	logger := utils.GetLogger()

	cleaner, err := s.CleanerRepo.GetByID(ctx, cleanerID)
	if err != nil {
		return nil, err
	}
	if !cleaner.CanWork() {
		return nil, &AssignmentError{
			Code:    CodeCleanerUnavailable,
			Message: fmt.Sprintf("cleaner %s is %s and cannot take bookings", cleanerID, cleaner.Status),
		}
	}

	booking, err := s.Repo.AssignCleaner(ctx, bookingID, cleanerID, s.Policy.BufferMinutes)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrScheduleConflict):
			return nil, &AssignmentError{
				Code:    CodeScheduleConflict,
				Message: fmt.Sprintf("cleaner %s already has a conflicting booking", cleanerID),
			}
		case errors.Is(err, bookingRepo.ErrNotAssignable):
			return nil, &TransitionError{
				To:       models.BookingConfirmed,
				Required: []models.BookingStatus{models.BookingPending},
			}
		}
		return nil, err
	}

	logger.Info("cleaner assigned",
		zap.String("bookingID", bookingID),
		zap.String("cleanerID", cleanerID))
	return booking, nil
}
