package models

import "time"

// Service is a bookable offering (e.g. deep cleaning, small moving). Its
// public page is composed from LayoutConfig, an ordered sequence of content
// blocks validated against the block schema catalog before persistence.
type Service struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Slug            string    `bson:"slug" json:"slug"`
	Description     string    `bson:"description" json:"description"`
	DurationMinutes int       `bson:"duration_minutes" json:"duration_minutes"`
	Active          bool      `bson:"active" json:"active"`
	LayoutConfig    []Block   `bson:"layout_config" json:"layout_config"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}
