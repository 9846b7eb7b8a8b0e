// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published when a booking is created or
// reactivated. It carries enough information for downstream consumers to
// log or trigger analytics without querying the primary database.
type BookingConfirmedEvent struct {
	BookingID   uint64  `json:"booking_id"`
	UserID      uint64  `json:"user_id"`
	EventID     uint64  `json:"event_id"`
	EventTitle  string  `json:"event_title"`
	Venue       string  `json:"venue"`
	EventDate   string  `json:"event_date"`
	Price       float64 `json:"price"`
	Reactivated bool    `json:"reactivated"`
	ConfirmedAt string  `json:"confirmed_at"`
}
