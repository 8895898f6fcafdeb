package domain

import (
	"time"

	"github.com/playgrid/SlotBookingService/pkg/types"
)

// Slot represents a fixed time window at a venue on a date, bookable at most once.
// The Booked flag transitions exactly once, false -> true, and never back.
type Slot struct {
	ID        string
	VenueID   string
	Date      time.Time        // calendar date, time-of-day part is zero
	Time      types.TimeString // slot start time, e.g. "09:00"
	Booked    bool
	CreatedAt time.Time

	// Venue is attached on read paths that join the owning venue
	Venue *Venue

	// Booking is attached on read paths for booked slots.
	// Invariant: Booked == true <=> exactly one booking references the slot.
	Booking *Booking
}

// IsAvailable returns true if the slot can still be reserved
func (s *Slot) IsAvailable() bool {
	return !s.Booked
}

// SlotDate represents a distinct date that has slots, with its weekday name
type SlotDate struct {
	Date time.Time
}

// Day returns the full weekday name for the date, e.g. "Monday"
func (d SlotDate) Day() string {
	return d.Date.Weekday().String()
}
