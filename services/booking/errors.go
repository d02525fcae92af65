package booking

import (
	"errors"
	"fmt"
	"strings"

	"cleansweep/models"
)

// RejectionReason classifies why a candidate booking time was refused.
// These are deterministic and non-retryable; the caller must correct the
// input and resubmit.
type RejectionReason string

const (
	ReasonInvalidTimeFormat RejectionReason = "InvalidTimeFormat"
	ReasonTooSoon           RejectionReason = "TooSoon"
	ReasonTooFar            RejectionReason = "TooFar"
	ReasonOutsideHours      RejectionReason = "OutsideHours"
)

// PolicyError is returned by the booking window policy when a candidate
// start time is not legal.
type PolicyError struct {
	Reason  RejectionReason
	Message string
}

func (e *PolicyError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}

func newPolicyError(reason RejectionReason, format string, args ...any) error {
	return &PolicyError{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// Assignment error codes.
const (
	CodeCleanerUnavailable = "workerUnavailable"
	CodeScheduleConflict   = "scheduleConflict"
)

// AssignmentError is returned when an assignment attempt fails for a
// domain reason. The caller may retry with a different cleaner but must not
// blindly retry the same booking/cleaner pair.
type AssignmentError struct {
	Code    string
	Message string
}

func (e *AssignmentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsScheduleConflict reports whether err is a schedule-conflict assignment failure.
func IsScheduleConflict(err error) bool {
	var ae *AssignmentError
	return errors.As(err, &ae) && ae.Code == CodeScheduleConflict
}

// IsCleanerUnavailable reports whether err is a worker-unavailable assignment failure.
func IsCleanerUnavailable(err error) bool {
	var ae *AssignmentError
	return errors.As(err, &ae) && ae.Code == CodeCleanerUnavailable
}

// TransitionError is returned for an illegal booking status transition. It
// is a usage error from the calling layer and is never coerced to a nearby
// legal state.
type TransitionError struct {
	From     models.BookingStatus
	To       models.BookingStatus
	Required []models.BookingStatus
}

func (e *TransitionError) Error() string {
	if len(e.Required) == 0 {
		return fmt.Sprintf("no legal transition to status %s", e.To)
	}
	required := make([]string, len(e.Required))
	for i, s := range e.Required {
		required[i] = string(s)
	}
	if e.From == "" {
		return fmt.Sprintf("transition to %s requires current status %s", e.To, strings.Join(required, " or "))
	}
	return fmt.Sprintf("cannot transition from %s to %s: %s requires current status %s",
		e.From, e.To, e.To, strings.Join(required, " or "))
}
