package domain

import (
	"strings"
	"time"
)

// Booking represents a single successful reservation of a slot.
// Created exactly once, atomically with the slot's booked transition,
// and never mutated or deleted afterwards.
type Booking struct {
	ID        string
	UserName  string // denormalized player name, trimmed, non-empty
	Sport     string // denormalized sport name, trimmed, non-empty
	SlotID    string
	CreatedAt time.Time // server-assigned, reflects real creation order
}

// NewBooking builds a booking for the given slot with trimmed denormalized fields
func NewBooking(slotID, userName, sport string) *Booking {
	return &Booking{
		UserName: strings.TrimSpace(userName),
		Sport:    strings.TrimSpace(sport),
		SlotID:   slotID,
	}
}
