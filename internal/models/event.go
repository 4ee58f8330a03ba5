package models

import "time"

// Event represents a calendar entry. The notified flag is flipped exactly
// once by the reminder scheduler after an upcoming-event broadcast; a full
// record update through the CRUD API may reset it, in which case the event can
// legitimately be re-notified.
type Event struct {
	ID            string    `db:"id" json:"id"`
	Title         string    `db:"title" json:"title"`
	Description   string    `db:"description" json:"description"`
	Date          time.Time `db:"date" json:"date"`
	EventTime     string    `db:"event_time" json:"time,omitempty"`
	Type          string    `db:"event_type" json:"type"`
	Priority      string    `db:"priority" json:"priority"`
	Recurring     bool      `db:"recurring" json:"recurring"`
	RecurringType string    `db:"recurring_type" json:"recurring_type,omitempty"`
	Notified      bool      `db:"notified" json:"notified"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}
