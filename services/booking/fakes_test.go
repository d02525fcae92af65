package booking

import (
	"context"
	"sync"
	"time"

	bookingRepo "cleansweep/database/repository/booking"
	cleanerRepo "cleansweep/database/repository/cleaner"
	serviceRepo "cleansweep/database/repository/service"
	"cleansweep/models"
)

// fakeBookingRepo is an in-memory BookingRepository. AssignCleaner holds a
// mutex for the whole recheck-then-commit pair, mirroring the serializable
// transaction the Mongo implementation runs.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newFakeBookingRepo(bookings ...*models.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (f *fakeBookingRepo) Create(_ context.Context, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *b
	f.bookings[b.ID] = &copied
	return nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) ListByStatus(_ context.Context, status models.BookingStatus) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Status == status {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListByUser(_ context.Context, userID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListLiveByCleaner(_ context.Context, cleanerID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.CleanerID == cleanerID && b.IsLive() {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CountFutureLiveByCleaner(_ context.Context, cleanerID string, after time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, b := range f.bookings {
		if b.CleanerID == cleanerID && b.IsLive() && b.StartTime.After(after) {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id string, from, to models.BookingStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrNotFound
	}
	if b.Status != from {
		return bookingRepo.ErrStatusChanged
	}
	b.Status = to
	return nil
}

func (f *fakeBookingRepo) AssignCleaner(_ context.Context, bookingID, cleanerID string, bufferMinutes int) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.bookings[bookingID]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	if b.Status != models.BookingPending || b.CleanerID != "" {
		return nil, bookingRepo.ErrNotAssignable
	}
	for _, other := range f.bookings {
		if other.ID == b.ID || other.CleanerID != cleanerID || !other.IsLive() {
			continue
		}
		if b.Window().ConflictsWith(other.Window(), bufferMinutes) {
			return nil, bookingRepo.ErrScheduleConflict
		}
	}
	b.CleanerID = cleanerID
	b.Status = models.BookingConfirmed
	copied := *b
	return &copied, nil
}

// fakeCleanerRepo is an in-memory CleanerRepository.
type fakeCleanerRepo struct {
	mu       sync.Mutex
	cleaners []*models.Cleaner
}

func newFakeCleanerRepo(cleaners ...*models.Cleaner) *fakeCleanerRepo {
	return &fakeCleanerRepo{cleaners: cleaners}
}

func (f *fakeCleanerRepo) Create(_ context.Context, c *models.Cleaner) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *c
	f.cleaners = append(f.cleaners, &copied)
	return nil
}

func (f *fakeCleanerRepo) GetByID(_ context.Context, id string) (*models.Cleaner, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.cleaners {
		if c.ID == id {
			copied := *c
			return &copied, nil
		}
	}
	return nil, cleanerRepo.ErrNotFound
}

func (f *fakeCleanerRepo) GetAll(_ context.Context) ([]models.Cleaner, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Cleaner, 0, len(f.cleaners))
	for _, c := range f.cleaners {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCleanerRepo) Update(_ context.Context, cleaner *models.Cleaner) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, c := range f.cleaners {
		if c.ID == cleaner.ID {
			copied := *cleaner
			f.cleaners[i] = &copied
			return nil
		}
	}
	return cleanerRepo.ErrNotFound
}

func (f *fakeCleanerRepo) UpdateStatus(_ context.Context, id string, status models.CleanerStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.cleaners {
		if c.ID == id {
			c.Status = status
			return nil
		}
	}
	return cleanerRepo.ErrNotFound
}

func (f *fakeCleanerRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, c := range f.cleaners {
		if c.ID == id {
			f.cleaners = append(f.cleaners[:i], f.cleaners[i+1:]...)
			return nil
		}
	}
	return cleanerRepo.ErrNotFound
}

// fakeServiceRepo is an in-memory ServiceRepository.
type fakeServiceRepo struct {
	services map[string]*models.Service
}

func newFakeServiceRepo(services ...*models.Service) *fakeServiceRepo {
	repo := &fakeServiceRepo{services: make(map[string]*models.Service)}
	for _, s := range services {
		repo.services[s.ID] = s
	}
	return repo
}

func (f *fakeServiceRepo) Create(_ context.Context, s *models.Service) error {
	copied := *s
	f.services[s.ID] = &copied
	return nil
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id string) (*models.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, serviceRepo.ErrNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeServiceRepo) GetAll(_ context.Context) ([]models.Service, error) {
	var out []models.Service
	for _, s := range f.services {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeServiceRepo) Update(_ context.Context, s *models.Service) error {
	if _, ok := f.services[s.ID]; !ok {
		return serviceRepo.ErrNotFound
	}
	copied := *s
	f.services[s.ID] = &copied
	return nil
}

func (f *fakeServiceRepo) UpdateLayout(_ context.Context, id string, layout []models.Block) error {
	s, ok := f.services[id]
	if !ok {
		return serviceRepo.ErrNotFound
	}
	s.LayoutConfig = layout
	return nil
}

func (f *fakeServiceRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.services[id]; !ok {
		return serviceRepo.ErrNotFound
	}
	delete(f.services, id)
	return nil
}
