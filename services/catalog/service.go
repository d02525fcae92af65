package catalog

import (
	"context"
	"encoding/json"
	"time"

	"cleansweep/models"
	"cleansweep/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const layoutCacheTTL = 5 * time.Minute

func (s *DefaultCatalogService) CreateService(ctx context.Context, service *models.Service) error {
	if res := s.Validator.ValidateLayout(service.LayoutConfig); !res.Valid {
		return &LayoutError{Result: res}
	}
	if service.ID == "" {
		service.ID = uuid.New().String()
	}
	now := time.Now()
	service.CreatedAt = now
	service.UpdatedAt = now
	return s.Repo.Create(ctx, service)
}

func (s *DefaultCatalogService) GetService(ctx context.Context, id string) (*models.Service, error) {
	if cached := s.cachedService(ctx, id); cached != nil {
		return cached, nil
	}

	service, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cacheService(ctx, service)
	return service, nil
}

func (s *DefaultCatalogService) ListServices(ctx context.Context) ([]models.Service, error) {
	return s.Repo.GetAll(ctx)
}

// UpdateLayout validates the full ordered block sequence and rejects the
// update wholesale on any error; the caller receives the complete list.
func (s *DefaultCatalogService) UpdateLayout(ctx context.Context, id string, layout []models.Block) error {
	logger := utils.GetLogger()

	if res := s.Validator.ValidateLayout(layout); !res.Valid {
		logger.Debug("layout update rejected",
			zap.String("serviceID", id), zap.Int("errors", len(res.Errors)))
		return &LayoutError{Result: res}
	}

	if err := s.Repo.UpdateLayout(ctx, id, layout); err != nil {
		return err
	}
	s.invalidateService(ctx, id)
	logger.Info("service layout updated", zap.String("serviceID", id), zap.Int("blocks", len(layout)))
	return nil
}

func (s *DefaultCatalogService) DeleteService(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateService(ctx, id)
	return nil
}

func (s *DefaultCatalogService) ValidateBlock(blockType string, data map[string]any) models.ValidationResult {
	return s.Validator.Validate(blockType, data)
}

func (s *DefaultCatalogService) BlockSchemas() []models.BlockSchema {
	reg := s.Validator.Registry
	schemas := make([]models.BlockSchema, 0)
	for _, t := range reg.Types() {
		if schema, err := reg.Get(t); err == nil {
			schemas = append(schemas, schema)
		}
	}
	return schemas
}

func (s *DefaultCatalogService) cachedService(ctx context.Context, id string) *models.Service {
	if s.Cache == nil {
		return nil
	}
	raw, err := s.Cache.Get(ctx, utils.ServiceCacheKey(id)).Result()
	if err != nil {
		return nil
	}
	var service models.Service
	if err := json.Unmarshal([]byte(raw), &service); err != nil {
		return nil
	}
	return &service
}

func (s *DefaultCatalogService) cacheService(ctx context.Context, service *models.Service) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(service)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, utils.ServiceCacheKey(service.ID), raw, layoutCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache service", zap.String("serviceID", service.ID), zap.Error(err))
	}
}

func (s *DefaultCatalogService) invalidateService(ctx context.Context, id string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, utils.ServiceCacheKey(id)).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate service cache", zap.String("serviceID", id), zap.Error(err))
	}
}
