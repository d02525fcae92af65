package models

import "time"

// CleanerStatus tracks whether a cleaner can take assignments.
type CleanerStatus string

const (
	CleanerActive   CleanerStatus = "ACTIVE"
	CleanerInactive CleanerStatus = "INACTIVE"
	CleanerOnLeave  CleanerStatus = "ON_LEAVE"
)

// Cleaner is a service-delivery staff member assignable to bookings.
type Cleaner struct {
	ID        string        `bson:"id" json:"id"`
	FullName  string        `bson:"full_name" json:"full_name"`
	Phone     string        `bson:"phone" json:"phone"`
	Email     string        `bson:"email" json:"email"`
	Status    CleanerStatus `bson:"status" json:"status"`
	Skills    []string      `bson:"skills,omitempty" json:"skills,omitempty"` // Service IDs the cleaner covers
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updated_at"`
}

// CanWork reports whether the cleaner may be assigned new bookings.
func (c *Cleaner) CanWork() bool {
	return c.Status == CleanerActive
}
