package bookingRepo

import (
	"context"
	"errors"
	"time"

	"cleansweep/models"
)

// Sentinel errors surfaced by the booking repository. Domain services map
// these onto their own error taxonomy; anything else coming out of the
// repository is an infrastructure failure and propagates opaquely.
var (
	// ErrNotFound indicates the booking does not exist.
	ErrNotFound = errors.New("booking not found")
	// ErrScheduleConflict indicates the conditional assignment found an
	// overlapping live booking for the cleaner.
	ErrScheduleConflict = errors.New("cleaner schedule conflict")
	// ErrNotAssignable indicates the booking is not in a state that accepts
	// an assignment (not PENDING, or already assigned).
	ErrNotAssignable = errors.New("booking is not assignable")
	// ErrStatusChanged indicates a conditional status update lost to a
	// concurrent writer.
	ErrStatusChanged = errors.New("booking status changed concurrently")
)

// BookingRepository defines booking data access.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(ctx context.Context, booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// ListByStatus retrieves all bookings in the given status.
	ListByStatus(ctx context.Context, status models.BookingStatus) ([]models.Booking, error)
	// ListByUser retrieves all bookings made by a user.
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	// ListLiveByCleaner retrieves the cleaner's bookings that still occupy
	// the calendar (every status except CANCELLED).
	ListLiveByCleaner(ctx context.Context, cleanerID string) ([]models.Booking, error)
	// CountFutureLiveByCleaner counts the cleaner's live bookings starting
	// after the given instant.
	CountFutureLiveByCleaner(ctx context.Context, cleanerID string, after time.Time) (int64, error)
	// UpdateStatus performs a conditional status update: it succeeds only if
	// the booking is still in the expected current status, otherwise it
	// returns ErrStatusChanged (or ErrNotFound).
	UpdateStatus(ctx context.Context, id string, from, to models.BookingStatus) error
	// AssignCleaner atomically rechecks the cleaner's calendar and, when no
	// buffered overlap exists, sets cleaner_id and moves the booking from
	// PENDING to CONFIRMED. The recheck and the commit are one serializable
	// unit against the store; no partial update is observable.
	AssignCleaner(ctx context.Context, bookingID, cleanerID string, bufferMinutes int) (*models.Booking, error)
}
