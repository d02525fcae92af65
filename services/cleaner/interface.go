package cleaner

import (
	"context"
	"fmt"

	bookingRepo "cleansweep/database/repository/booking"
	cleanerRepo "cleansweep/database/repository/cleaner"
	"cleansweep/models"
)

// StatusBlockedError is returned when a cleaner cannot leave active duty
// because future live bookings still depend on them.
type StatusBlockedError struct {
	CleanerID string
	Target    models.CleanerStatus
	Blocking  int64
}

func (e *StatusBlockedError) Error() string {
	return fmt.Sprintf("cleaner %s cannot move to %s: %d upcoming booking(s) still assigned",
		e.CleanerID, e.Target, e.Blocking)
}

// CleanerService manages the cleaner roster.
type CleanerService interface {
	// CreateCleaner registers a new cleaner, ACTIVE by default.
	CreateCleaner(ctx context.Context, cleaner *models.Cleaner) error
	// GetCleaner retrieves a cleaner by ID.
	GetCleaner(ctx context.Context, id string) (*models.Cleaner, error)
	// ListCleaners retrieves the full roster.
	ListCleaners(ctx context.Context) ([]models.Cleaner, error)
	// UpdateCleaner modifies a cleaner's profile.
	UpdateCleaner(ctx context.Context, cleaner *models.Cleaner) error
	// UpdateStatus changes the cleaner's duty status; leaving active duty is
	// refused while the cleaner holds future live bookings.
	UpdateStatus(ctx context.Context, id string, target models.CleanerStatus) error
	// DeleteCleaner removes a cleaner from the roster.
	DeleteCleaner(ctx context.Context, id string) error
}

// DefaultCleanerService implements CleanerService.
type DefaultCleanerService struct {
	Repo        cleanerRepo.CleanerRepository
	BookingRepo bookingRepo.BookingRepository
}
