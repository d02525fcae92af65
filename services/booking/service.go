package booking

import (
	"context"
	"fmt"
	"time"

	"cleansweep/models"
	"cleansweep/services/catalog"
	"cleansweep/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking admits the request through the window policy and persists a
// PENDING booking. The end instant is derived from the service duration; the
// price is a pure lookup keyed by the sub-service identifier.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*models.Booking, error) {
	logger := utils.GetLogger()

	service, err := s.ServiceRepo.GetByID(ctx, input.ServiceID)
	if err != nil {
		return nil, err
	}
	if !service.Active {
		return nil, fmt.Errorf("service %s is not bookable", service.ID)
	}

	start, err := s.Policy.CheckWindow(input.Date, input.Time, time.Now())
	if err != nil {
		return nil, err
	}
	end := start.Add(time.Duration(service.DurationMinutes) * time.Minute)

	var price float64
	if input.SubserviceID != "" {
		price, err = catalog.SubservicePrice(service, input.SubserviceID)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now()
	booking := &models.Booking{
		ID:           uuid.New().String(),
		ServiceID:    service.ID,
		SubserviceID: input.SubserviceID,
		UserID:       input.UserID,
		Status:       models.BookingPending,
		StartTime:    start,
		EndTime:      end,
		TotalPrice:   price,
		BookingData:  input.BookingData,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, booking); err != nil {
		return nil, err
	}

	logger.Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("serviceID", booking.ServiceID),
		zap.Time("start", booking.StartTime))
	return booking, nil
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultBookingService) ListBookings(ctx context.Context, status models.BookingStatus) ([]models.Booking, error) {
	return s.Repo.ListByStatus(ctx, status)
}

func (s *DefaultBookingService) ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// AvailableCleaners returns the active cleaners free for the booking's
// window. The answer is advisory only: assignment always rechecks the
// calendar at commit time.
func (s *DefaultBookingService) AvailableCleaners(ctx context.Context, bookingID string) ([]models.Cleaner, error) {
	booking, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	roster, err := s.CleanerRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	bookingsByCleaner := make(map[string][]models.Booking, len(roster))
	for i := range roster {
		if !roster[i].CanWork() {
			continue
		}
		existing, err := s.Repo.ListLiveByCleaner(ctx, roster[i].ID)
		if err != nil {
			return nil, err
		}
		bookingsByCleaner[roster[i].ID] = existing
	}

	availableIDs := ListAvailableCleaners(booking.Window(), roster, bookingsByCleaner, s.Policy.BufferMinutes)
	idSet := make(map[string]struct{}, len(availableIDs))
	for _, id := range availableIDs {
		idSet[id] = struct{}{}
	}

	var available []models.Cleaner
	for i := range roster {
		if _, ok := idSet[roster[i].ID]; ok {
			available = append(available, roster[i])
		}
	}
	return available, nil
}
