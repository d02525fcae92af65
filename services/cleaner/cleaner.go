package cleaner

import (
	"context"
	"time"

	"cleansweep/models"
	"cleansweep/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultCleanerService) CreateCleaner(ctx context.Context, cleaner *models.Cleaner) error {
	if cleaner.ID == "" {
		cleaner.ID = uuid.New().String()
	}
	if cleaner.Status == "" {
		cleaner.Status = models.CleanerActive
	}
	now := time.Now()
	cleaner.CreatedAt = now
	cleaner.UpdatedAt = now
	return s.Repo.Create(ctx, cleaner)
}

func (s *DefaultCleanerService) GetCleaner(ctx context.Context, id string) (*models.Cleaner, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultCleanerService) ListCleaners(ctx context.Context) ([]models.Cleaner, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultCleanerService) UpdateCleaner(ctx context.Context, cleaner *models.Cleaner) error {
	return s.Repo.Update(ctx, cleaner)
}

// UpdateStatus changes the cleaner's duty status. Moving away from ACTIVE is
// refused while the cleaner still holds live bookings scheduled in the
// future, so commitments are never silently abandoned; the error carries the
// blocking count.
func (s *DefaultCleanerService) UpdateStatus(ctx context.Context, id string, target models.CleanerStatus) error {
	if target != models.CleanerActive {
		blocking, err := s.BookingRepo.CountFutureLiveByCleaner(ctx, id, time.Now())
		if err != nil {
			return err
		}
		if blocking > 0 {
			return &StatusBlockedError{CleanerID: id, Target: target, Blocking: blocking}
		}
	}

	if err := s.Repo.UpdateStatus(ctx, id, target); err != nil {
		return err
	}

	utils.GetLogger().Info("cleaner status changed",
		zap.String("cleanerID", id), zap.String("status", string(target)))
	return nil
}

func (s *DefaultCleanerService) DeleteCleaner(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
