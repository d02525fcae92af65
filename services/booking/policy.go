package booking

import (
	"strconv"
	"strings"
	"time"

	"cleansweep/config"
)

// WindowPolicy decides whether a candidate appointment time is legal. All
// checks run against the business's fixed civil timezone so that the hour
// of day is evaluated as the wall-clock hour the customer selected, never a
// server-local reinterpretation.
type WindowPolicy struct {
	BufferMinutes int
	AdvanceDays   int
	WorkStartHour int
	WorkEndHour   int
	Location      *time.Location
}

// DefaultWindowPolicy returns the stock business rules: a 30 minute buffer,
// bookings up to 7 days ahead, working hours 07:00-19:00, UTC+7.
func DefaultWindowPolicy() *WindowPolicy {
	return &WindowPolicy{
		BufferMinutes: 30,
		AdvanceDays:   7,
		WorkStartHour: 7,
		WorkEndHour:   19,
		Location:      time.FixedZone("business", 7*3600),
	}
}

// PolicyFromConfig builds the window policy from the loaded configuration.
func PolicyFromConfig() *WindowPolicy {
	cfg := config.AppConfig
	return &WindowPolicy{
		BufferMinutes: cfg.BookingBufferMinutes,
		AdvanceDays:   cfg.BookingAdvanceDays,
		WorkStartHour: cfg.WorkStartHour,
		WorkEndHour:   cfg.WorkEndHour,
		Location:      time.FixedZone("business", cfg.BusinessUTCOffset*3600),
	}
}

// CheckWindow validates a candidate start against the business rules and, on
// success, returns the canonical start instant for persistence. The checks
// run in order and the first failure wins: time format, too soon, too far,
// outside working hours.
//
// dateStr is "YYYY-MM-DD" and timeStr is "HH:MM", both as submitted by the
// customer.
func (p *WindowPolicy) CheckWindow(dateStr, timeStr string, now time.Time) (time.Time, error) {
	start, err := time.ParseInLocation("2006-01-02 15:04", dateStr+" "+timeStr, p.Location)
	if err != nil {
		return time.Time{}, newPolicyError(ReasonInvalidTimeFormat,
			"cannot parse %q %q as a booking time", dateStr, timeStr)
	}

	buffer := time.Duration(p.BufferMinutes) * time.Minute
	if start.Before(now.Add(buffer)) {
		return time.Time{}, newPolicyError(ReasonTooSoon,
			"booking must start at least %d minutes from now", p.BufferMinutes)
	}

	if start.After(now.Add(time.Duration(p.AdvanceDays) * 24 * time.Hour)) {
		return time.Time{}, newPolicyError(ReasonTooFar,
			"booking cannot start more than %d days from now", p.AdvanceDays)
	}

	// Working hours are checked against the literal hour the customer
	// submitted, not one re-derived from the composed instant through a
	// different timezone.
	hour, err := submittedHour(timeStr)
	if err != nil {
		return time.Time{}, newPolicyError(ReasonInvalidTimeFormat, "cannot read hour from %q", timeStr)
	}
	if hour < p.WorkStartHour || hour >= p.WorkEndHour {
		return time.Time{}, newPolicyError(ReasonOutsideHours,
			"bookings are accepted between %02d:00 and %02d:00 only", p.WorkStartHour, p.WorkEndHour)
	}

	return start, nil
}

// submittedHour extracts the hour component from the raw "HH:MM" string.
func submittedHour(timeStr string) (int, error) {
	part, _, _ := strings.Cut(timeStr, ":")
	return strconv.Atoi(strings.TrimSpace(part))
}
