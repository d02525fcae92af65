package catalog

import (
	"context"
	"fmt"

	serviceRepo "cleansweep/database/repository/service"
	"cleansweep/models"
	"cleansweep/services/schema"

	"github.com/go-redis/redis/v8"
)

// LayoutError wraps the full validation result of a rejected layout so the
// authoring UI can highlight every offending field at once.
type LayoutError struct {
	Result models.ValidationResult
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("layout rejected with %d validation error(s)", len(e.Result.Errors))
}

// CatalogService manages the bookable services and their block layouts.
type CatalogService interface {
	// CreateService persists a new service; its layout is validated first.
	CreateService(ctx context.Context, service *models.Service) error
	// GetService retrieves a service by ID.
	GetService(ctx context.Context, id string) (*models.Service, error)
	// ListServices retrieves all services.
	ListServices(ctx context.Context) ([]models.Service, error)
	// UpdateLayout validates and replaces a service's block layout. The
	// update is rejected wholesale on any block error.
	UpdateLayout(ctx context.Context, id string, layout []models.Block) error
	// DeleteService removes a service.
	DeleteService(ctx context.Context, id string) error
	// ValidateBlock checks one (blockType, data) pair for the authoring UI.
	ValidateBlock(blockType string, data map[string]any) models.ValidationResult
	// BlockSchemas exposes the registered block schemas for the builder UI.
	BlockSchemas() []models.BlockSchema
}

// DefaultCatalogService implements CatalogService. Cache is optional; when
// set, service reads are served from Redis with a short TTL and invalidated
// on writes.
type DefaultCatalogService struct {
	Repo      serviceRepo.ServiceRepository
	Validator *schema.Validator
	Cache     *redis.Client
}
