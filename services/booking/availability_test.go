package booking

import (
	"testing"
	"time"

	"cleansweep/models"

	"github.com/stretchr/testify/assert"
)

func window(t *testing.T, startHour, endHour int) models.SchedulingWindow {
	t.Helper()
	day := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	return models.SchedulingWindow{
		Start: day.Add(time.Duration(startHour) * time.Hour),
		End:   day.Add(time.Duration(endHour) * time.Hour),
	}
}

func TestConflictsWithBufferedOverlap(t *testing.T) {
	a := window(t, 9, 11)

	// Disjoint but within the doubled buffer gap: 30 minutes either side.
	b := models.SchedulingWindow{
		Start: a.End.Add(20 * time.Minute),
		End:   a.End.Add(80 * time.Minute),
	}
	assert.True(t, a.ConflictsWith(b, 30))
	assert.True(t, b.ConflictsWith(a, 30), "conflict must be symmetric")

	// Far enough apart to clear the buffer on both sides.
	c := models.SchedulingWindow{
		Start: a.End.Add(61 * time.Minute),
		End:   a.End.Add(121 * time.Minute),
	}
	assert.False(t, a.ConflictsWith(c, 30))

	// Zero buffer: only direct overlap counts.
	assert.False(t, a.ConflictsWith(b, 0))
	assert.True(t, a.ConflictsWith(window(t, 10, 12), 0))
}

func TestConflictMonotonicInBuffer(t *testing.T) {
	a := window(t, 9, 11)
	offsets := []time.Duration{0, 15 * time.Minute, 45 * time.Minute, 2 * time.Hour}

	for _, off := range offsets {
		b := models.SchedulingWindow{Start: a.End.Add(off), End: a.End.Add(off + time.Hour)}
		previous := false
		for buffer := 0; buffer <= 120; buffer += 5 {
			conflict := a.ConflictsWith(b, buffer)
			if previous {
				assert.True(t, conflict,
					"conflict at buffer %d must persist for larger buffers (offset %v)", buffer, off)
			}
			previous = conflict
		}
	}
}

func TestHasConflictSkipsNothing(t *testing.T) {
	candidate := window(t, 9, 11)

	assert.False(t, HasConflict(candidate, nil, 30))
	assert.True(t, HasConflict(candidate, []models.SchedulingWindow{
		window(t, 14, 16),
		window(t, 10, 12),
	}, 30))
}

func TestLiveWindowsExcludesCancelled(t *testing.T) {
	bookings := []models.Booking{
		{Status: models.BookingConfirmed, StartTime: window(t, 9, 10).Start, EndTime: window(t, 9, 10).End},
		{Status: models.BookingCancelled, StartTime: window(t, 11, 12).Start, EndTime: window(t, 11, 12).End},
		{Status: models.BookingCompleted, StartTime: window(t, 13, 14).Start, EndTime: window(t, 13, 14).End},
	}

	windows := LiveWindows(bookings)
	assert.Len(t, windows, 2)
}

func TestListAvailableCleaners(t *testing.T) {
	candidate := window(t, 9, 11)
	roster := []models.Cleaner{
		{ID: "c1", Status: models.CleanerActive},
		{ID: "c2", Status: models.CleanerOnLeave},
		{ID: "c3", Status: models.CleanerActive},
		{ID: "c4", Status: models.CleanerActive},
	}
	busy := window(t, 10, 12)
	cancelled := window(t, 10, 12)
	bookingsByCleaner := map[string][]models.Booking{
		"c3": {{Status: models.BookingConfirmed, StartTime: busy.Start, EndTime: busy.End}},
		"c4": {{Status: models.BookingCancelled, StartTime: cancelled.Start, EndTime: cancelled.End}},
	}

	available := ListAvailableCleaners(candidate, roster, bookingsByCleaner, 30)

	// c2 is on leave, c3 is double-booked; c4's cancelled booking no longer
	// occupies the calendar. Order follows the roster.
	assert.Equal(t, []string{"c1", "c4"}, available)
}
