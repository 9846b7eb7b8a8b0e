// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios and map
// them to HTTP status codes.
package repository

import "errors"

// ErrEventNotFound is returned when no event exists for the requested
// identifier. Handlers translate this into a 404 response.
var ErrEventNotFound = errors.New("event not found")

// ErrBookingNotFound is returned when a booking does not exist or does
// not belong to the requesting user. The two cases are deliberately
// indistinguishable so a caller cannot probe for other users' bookings.
var ErrBookingNotFound = errors.New("booking not found")

// ErrAlreadyBooked is returned when the user already holds a confirmed
// booking for the event. Handlers translate this into a 400 response.
var ErrAlreadyBooked = errors.New("already booked")
