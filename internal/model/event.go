package model

import "time"

// Event represents a listed event as stored in the `events` table.
// Tags are persisted as a JSON array column so their order survives
// round-trips.
//
// Fields:
//  ID          – primary key identifier.
//  Title       – event title.
//  Description – free-text description.
//  Date        – when the event starts.
//  Venue       – where the event takes place.
//  Price       – ticket price, non-negative.
//  Category    – free-text category label matched exactly by filters.
//  Image       – URL of the event image.
//  Tags        – ordered list of tag strings.
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – last update timestamp.
type Event struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Venue       string    `json:"venue"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
