package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"cleansweep/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(bookings *fakeBookingRepo, cleaners *fakeCleanerRepo) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:        bookings,
		CleanerRepo: cleaners,
		ServiceRepo: newFakeServiceRepo(),
		Policy:      DefaultWindowPolicy(),
	}
}

func pendingBooking(id string, w models.SchedulingWindow) *models.Booking {
	return &models.Booking{
		ID:        id,
		ServiceID: "svc-1",
		UserID:    "user-1",
		Status:    models.BookingPending,
		StartTime: w.Start,
		EndTime:   w.End,
	}
}

func TestAssignConfirmsPendingBooking(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking("b1", window(t, 9, 11)))
	cleaners := newFakeCleanerRepo(&models.Cleaner{ID: "c1", Status: models.CleanerActive})
	svc := newTestService(repo, cleaners)

	booking, err := svc.Assign(context.Background(), "b1", "c1")

	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, booking.Status)
	assert.Equal(t, "c1", booking.CleanerID)

	stored, err := repo.GetByID(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, stored.Status)
}

func TestAssignRefusesUnavailableCleaner(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking("b1", window(t, 9, 11)))
	cleaners := newFakeCleanerRepo(&models.Cleaner{ID: "c1", Status: models.CleanerOnLeave})
	svc := newTestService(repo, cleaners)

	_, err := svc.Assign(context.Background(), "b1", "c1")

	require.Error(t, err)
	assert.True(t, IsCleanerUnavailable(err))
	assert.False(t, IsScheduleConflict(err))

	// The booking is untouched.
	stored, _ := repo.GetByID(context.Background(), "b1")
	assert.Equal(t, models.BookingPending, stored.Status)
	assert.Empty(t, stored.CleanerID)
}

func TestAssignDetectsScheduleConflict(t *testing.T) {
	existing := pendingBooking("b0", window(t, 10, 12))
	existing.Status = models.BookingConfirmed
	existing.CleanerID = "c1"

	repo := newFakeBookingRepo(existing, pendingBooking("b1", window(t, 9, 11)))
	cleaners := newFakeCleanerRepo(&models.Cleaner{ID: "c1", Status: models.CleanerActive})
	svc := newTestService(repo, cleaners)

	_, err := svc.Assign(context.Background(), "b1", "c1")

	require.Error(t, err)
	assert.True(t, IsScheduleConflict(err))
}

func TestAssignBufferedConflictWithoutDirectOverlap(t *testing.T) {
	// The cleaner's existing job ends at 11:00; the candidate starts 11:20.
	// With a 30 minute buffer that is still a conflict.
	existing := pendingBooking("b0", window(t, 9, 11))
	existing.Status = models.BookingConfirmed
	existing.CleanerID = "c1"

	candidate := window(t, 9, 11)
	candidate.Start = candidate.End.Add(20 * time.Minute)
	candidate.End = candidate.Start.Add(time.Hour)

	repo := newFakeBookingRepo(existing, pendingBooking("b1", candidate))
	cleaners := newFakeCleanerRepo(&models.Cleaner{ID: "c1", Status: models.CleanerActive})
	svc := newTestService(repo, cleaners)

	_, err := svc.Assign(context.Background(), "b1", "c1")
	assert.True(t, IsScheduleConflict(err))
}

func TestAssignIgnoresCancelledBookings(t *testing.T) {
	cancelled := pendingBooking("b0", window(t, 9, 11))
	cancelled.Status = models.BookingCancelled
	cancelled.CleanerID = "c1"

	repo := newFakeBookingRepo(cancelled, pendingBooking("b1", window(t, 9, 11)))
	cleaners := newFakeCleanerRepo(&models.Cleaner{ID: "c1", Status: models.CleanerActive})
	svc := newTestService(repo, cleaners)

	booking, err := svc.Assign(context.Background(), "b1", "c1")

	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, booking.Status)
}

func TestAssignNonPendingBooking(t *testing.T) {
	confirmed := pendingBooking("b1", window(t, 9, 11))
	confirmed.Status = models.BookingConfirmed
	confirmed.CleanerID = "c9"

	repo := newFakeBookingRepo(confirmed)
	cleaners := newFakeCleanerRepo(&models.Cleaner{ID: "c1", Status: models.CleanerActive})
	svc := newTestService(repo, cleaners)

	_, err := svc.Assign(context.Background(), "b1", "c1")

	var transitionErr *TransitionError
	require.True(t, errors.As(err, &transitionErr))
	assert.Equal(t, models.BookingConfirmed, transitionErr.To)
	assert.Equal(t, []models.BookingStatus{models.BookingPending}, transitionErr.Required)
}

func TestAssignRaceYieldsExactlyOneWinner(t *testing.T) {
	// Two pending bookings over the same window racing for the same cleaner:
	// one must confirm, the other must come back as a schedule conflict.
	repo := newFakeBookingRepo(
		pendingBooking("b1", window(t, 9, 11)),
		pendingBooking("b2", window(t, 10, 12)),
	)
	cleaners := newFakeCleanerRepo(&models.Cleaner{ID: "c1", Status: models.CleanerActive})
	svc := newTestService(repo, cleaners)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i, id := range []string{"b1", "b2"} {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			_, results[i] = svc.Assign(context.Background(), id, "c1")
		}(i, id)
	}
	wg.Wait()

	var confirmed, conflicts int
	for _, err := range results {
		switch {
		case err == nil:
			confirmed++
		case IsScheduleConflict(err):
			conflicts++
		default:
			t.Fatalf("unexpected assign error: %v", err)
		}
	}
	assert.Equal(t, 1, confirmed)
	assert.Equal(t, 1, conflicts)
}

func TestTransitionStatusLifecycle(t *testing.T) {
	confirmed := pendingBooking("b1", window(t, 9, 11))
	confirmed.Status = models.BookingConfirmed
	confirmed.CleanerID = "c1"

	repo := newFakeBookingRepo(confirmed)
	svc := newTestService(repo, newFakeCleanerRepo())
	ctx := context.Background()

	require.NoError(t, svc.TransitionStatus(ctx, "b1", models.BookingInProgress))
	require.NoError(t, svc.TransitionStatus(ctx, "b1", models.BookingCompleted))

	stored, _ := repo.GetByID(ctx, "b1")
	assert.Equal(t, models.BookingCompleted, stored.Status)
}

func TestTransitionStatusRejectsSkips(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking("b1", window(t, 9, 11)))
	svc := newTestService(repo, newFakeCleanerRepo())

	// PENDING cannot jump straight to IN_PROGRESS.
	err := svc.TransitionStatus(context.Background(), "b1", models.BookingInProgress)

	var transitionErr *TransitionError
	require.True(t, errors.As(err, &transitionErr))
	assert.Equal(t, models.BookingPending, transitionErr.From)
	assert.Equal(t, models.BookingInProgress, transitionErr.To)
	assert.Equal(t, []models.BookingStatus{models.BookingConfirmed}, transitionErr.Required)

	// The refusal leaves the booking where it was.
	stored, _ := repo.GetByID(context.Background(), "b1")
	assert.Equal(t, models.BookingPending, stored.Status)
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()

	repo := newFakeBookingRepo(pendingBooking("b1", window(t, 9, 11)))
	svc := newTestService(repo, newFakeCleanerRepo())

	require.NoError(t, svc.CancelBooking(ctx, "b1"))
	stored, _ := repo.GetByID(ctx, "b1")
	assert.Equal(t, models.BookingCancelled, stored.Status)

	// Terminal states cannot be cancelled.
	done := pendingBooking("b2", window(t, 13, 15))
	done.Status = models.BookingCompleted
	require.NoError(t, repo.Create(ctx, done))

	err := svc.CancelBooking(ctx, "b2")
	var transitionErr *TransitionError
	require.True(t, errors.As(err, &transitionErr))
	assert.Equal(t, models.BookingCancelled, transitionErr.To)
}

func TestAvailableCleanersForBooking(t *testing.T) {
	booked := pendingBooking("b0", window(t, 10, 12))
	booked.Status = models.BookingConfirmed
	booked.CleanerID = "c2"

	repo := newFakeBookingRepo(booked, pendingBooking("b1", window(t, 9, 11)))
	cleaners := newFakeCleanerRepo(
		&models.Cleaner{ID: "c1", Status: models.CleanerActive},
		&models.Cleaner{ID: "c2", Status: models.CleanerActive},
		&models.Cleaner{ID: "c3", Status: models.CleanerInactive},
	)
	svc := newTestService(repo, cleaners)

	available, err := svc.AvailableCleaners(context.Background(), "b1")

	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, "c1", available[0].ID)
}
