package domain

import "time"

// Venue represents a sports venue that owns bookable slots.
// Venues are created administratively and are immutable afterwards.
type Venue struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
