package model

import "time"

// BookingStatus is the two-state machine a booking moves through. Both
// states are re-enterable: cancelling flips confirmed -> cancelled, and
// booking the same event again flips cancelled -> confirmed on the same
// row instead of inserting a new one.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is one of the two known states.
func (s BookingStatus) Valid() bool {
	return s == BookingConfirmed || s == BookingCancelled
}

// Active reports whether the booking counts toward the one-active-
// booking-per-(user,event) invariant.
func (s BookingStatus) Active() bool { return s == BookingConfirmed }

// CanReactivate reports whether a new booking request for the same
// (user,event) pair may flip this booking back to confirmed.
func (s BookingStatus) CanReactivate() bool { return s == BookingCancelled }

// Booking links one user to one event. At most one row exists per
// (user,event) pair; the `bookings` table carries a UNIQUE key on the
// pair so concurrent duplicate inserts lose at the storage layer.
type Booking struct {
	ID        uint64        `json:"id"`
	UserID    uint64        `json:"user_id"`
	EventID   uint64        `json:"event_id"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}
