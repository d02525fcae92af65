package cleanerRepo

import (
	"context"
	"errors"

	"cleansweep/models"
)

// ErrNotFound indicates the cleaner does not exist.
var ErrNotFound = errors.New("cleaner not found")

// CleanerRepository defines cleaner roster data access.
type CleanerRepository interface {
	// Create inserts a new cleaner record.
	Create(ctx context.Context, cleaner *models.Cleaner) error
	// GetByID retrieves a cleaner by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Cleaner, error)
	// GetAll retrieves the full roster.
	GetAll(ctx context.Context) ([]models.Cleaner, error)
	// Update modifies an existing cleaner record.
	Update(ctx context.Context, cleaner *models.Cleaner) error
	// UpdateStatus sets the cleaner's status.
	UpdateStatus(ctx context.Context, id string, status models.CleanerStatus) error
	// Delete removes a cleaner record by its ID.
	Delete(ctx context.Context, id string) error
}
