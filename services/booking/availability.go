package booking

import "cleansweep/models"

// HasConflict reports whether the candidate window collides with any of the
// existing windows under the buffered-overlap rule.
func HasConflict(candidate models.SchedulingWindow, existing []models.SchedulingWindow, bufferMinutes int) bool {
	for _, w := range existing {
		if candidate.ConflictsWith(w, bufferMinutes) {
			return true
		}
	}
	return false
}

// LiveWindows extracts the scheduling windows of every booking still
// occupying a calendar (anything not cancelled).
func LiveWindows(bookings []models.Booking) []models.SchedulingWindow {
	var windows []models.SchedulingWindow
	for i := range bookings {
		if bookings[i].IsLive() {
			windows = append(windows, bookings[i].Window())
		}
	}
	return windows
}

// ListAvailableCleaners returns the IDs of active cleaners whose live
// bookings do not conflict with the candidate window. The result is stable
// with respect to roster order; callers must not depend on any ranking
// beyond that.
func ListAvailableCleaners(
	candidate models.SchedulingWindow,
	roster []models.Cleaner,
	bookingsByCleaner map[string][]models.Booking,
	bufferMinutes int,
) []string {
	var available []string
	for i := range roster {
		c := &roster[i]
		if !c.CanWork() {
			continue
		}
		if HasConflict(candidate, LiveWindows(bookingsByCleaner[c.ID]), bufferMinutes) {
			continue
		}
		available = append(available, c.ID)
	}
	return available
}
