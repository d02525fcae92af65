package booking

import (
	"context"

	bookingRepo "cleansweep/database/repository/booking"
	cleanerRepo "cleansweep/database/repository/cleaner"
	serviceRepo "cleansweep/database/repository/service"
	"cleansweep/models"
)

// CreateBookingInput carries the customer's booking request. Date and Time
// are the raw strings the customer submitted; the window policy composes and
// validates them.
type CreateBookingInput struct {
	ServiceID    string         `json:"service_id"`
	SubserviceID string         `json:"subservice_id"`
	UserID       string         `json:"user_id"`
	Date         string         `json:"date"` // "YYYY-MM-DD"
	Time         string         `json:"time"` // "HH:MM"
	BookingData  map[string]any `json:"booking_data,omitempty"`
}

// BookingService defines the booking admission, assignment and lifecycle
// operations.
type BookingService interface {
	// CreateBooking admits a booking request through the window policy and
	// persists it as PENDING.
	CreateBooking(ctx context.Context, input CreateBookingInput) (*models.Booking, error)
	// GetBooking retrieves a booking by ID.
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	// ListBookings retrieves bookings in the given status.
	ListBookings(ctx context.Context, status models.BookingStatus) ([]models.Booking, error)
	// ListUserBookings retrieves a user's bookings.
	ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error)
	// AvailableCleaners lists active cleaners free for the booking's window.
	AvailableCleaners(ctx context.Context, bookingID string) ([]models.Cleaner, error)
	// Assign confirms the booking for a cleaner after an atomic conflict
	// recheck at the store.
	Assign(ctx context.Context, bookingID, cleanerID string) (*models.Booking, error)
	// TransitionStatus moves the booking along its lifecycle, rejecting any
	// pairing the state machine does not allow.
	TransitionStatus(ctx context.Context, bookingID string, target models.BookingStatus) error
	// CancelBooking cancels a booking, legal from PENDING or CONFIRMED only.
	CancelBooking(ctx context.Context, bookingID string) error
}

// DefaultBookingService implements BookingService over the Mongo-backed
// repositories.
type DefaultBookingService struct {
	Repo        bookingRepo.BookingRepository
	CleanerRepo cleanerRepo.CleanerRepository
	ServiceRepo serviceRepo.ServiceRepository
	Policy      *WindowPolicy
}
