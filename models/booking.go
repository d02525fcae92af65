package models

import "time"

// BookingStatus tracks a booking through its lifecycle.
type BookingStatus string

const (
	BookingPending    BookingStatus = "PENDING"
	BookingConfirmed  BookingStatus = "CONFIRMED"
	BookingInProgress BookingStatus = "IN_PROGRESS"
	BookingCompleted  BookingStatus = "COMPLETED"
	BookingCancelled  BookingStatus = "CANCELLED"
)

// Booking represents a persisted booking record.
type Booking struct {
	ID           string         `bson:"id" json:"id"`                                       // Unique booking identifier (UUID)
	ServiceID    string         `bson:"service_id" json:"service_id"`                       // Booked service
	SubserviceID string         `bson:"subservice_id,omitempty" json:"subservice_id"`       // Priced sub-service within the service
	UserID       string         `bson:"user_id" json:"user_id"`                             // Customer who made the booking
	CleanerID    string         `bson:"cleaner_id,omitempty" json:"cleaner_id,omitempty"`   // Assigned cleaner; empty until assignment
	Status       BookingStatus  `bson:"status" json:"status"`                               // Lifecycle status
	StartTime    time.Time      `bson:"start_time" json:"start_time"`                       // Scheduled start instant
	EndTime      time.Time      `bson:"end_time" json:"end_time"`                           // Start + service duration
	TotalPrice   float64        `bson:"total_price" json:"total_price"`                     // Resolved from the service pricing block
	BookingData  map[string]any `bson:"booking_data,omitempty" json:"booking_data,omitempty"` // Free-form customer payload
	CreatedAt    time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `bson:"updated_at" json:"updated_at"`
}

// IsLive reports whether the booking still occupies the cleaner's calendar.
// Every status except CANCELLED counts as occupying.
func (b *Booking) IsLive() bool {
	return b.Status != BookingCancelled
}

// Window returns the booking's scheduling window.
func (b *Booking) Window() SchedulingWindow {
	return SchedulingWindow{Start: b.StartTime, End: b.EndTime}
}

// SchedulingWindow is a half-open time interval with End > Start. It belongs
// to exactly one booking and is no longer considered for conflicts once that
// booking is cancelled.
type SchedulingWindow struct {
	Start time.Time `bson:"start" json:"start"`
	End   time.Time `bson:"end" json:"end"`
}

// ConflictsWith reports whether two windows intersect after expanding each by
// a symmetric buffer of the given minutes. The buffer is applied on both
// sides of both windows, doubling the effective gap between jobs.
func (w SchedulingWindow) ConflictsWith(other SchedulingWindow, bufferMinutes int) bool {
	buffer := time.Duration(bufferMinutes) * time.Minute
	return w.Start.Add(-buffer).Before(other.End) && other.Start.Add(-buffer).Before(w.End)
}
