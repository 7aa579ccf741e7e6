// Package queue defines message payloads exchanged over the message broker.
package queue

// LayoutSavedEvent is published after a year's snapshot is persisted.  It
// carries enough information for downstream consumers to log or trigger
// analytics without re-reading the database.
type LayoutSavedEvent struct {
	Year        int    `json:"year"`
	Items       int    `json:"items"`
	Tables      int    `json:"tables"`
	Columns     int    `json:"columns"`
	Assignments int    `json:"assignments"`
	SavedAt     string `json:"saved_at"`
}
