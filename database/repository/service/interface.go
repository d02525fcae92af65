package serviceRepo

import (
	"context"
	"errors"

	"cleansweep/models"
)

// ErrNotFound indicates the service does not exist.
var ErrNotFound = errors.New("service not found")

// ServiceRepository defines service catalog data access.
type ServiceRepository interface {
	// Create inserts a new service record.
	Create(ctx context.Context, service *models.Service) error
	// GetByID retrieves a service by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Service, error)
	// GetAll retrieves all services.
	GetAll(ctx context.Context) ([]models.Service, error)
	// Update modifies an existing service record.
	Update(ctx context.Context, service *models.Service) error
	// UpdateLayout replaces the service's layout_config block sequence.
	UpdateLayout(ctx context.Context, id string, layout []models.Block) error
	// Delete removes a service record by its ID.
	Delete(ctx context.Context, id string) error
}
