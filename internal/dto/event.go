package dto

import "time"

// EventRequest carries the full editable event record. Updates replace the
// whole record, matching the client's edit form; the notified flag is reset
// by an update unless the client echoes it back.
type EventRequest struct {
	Title         string    `json:"title" validate:"required"`
	Description   string    `json:"description"`
	Date          time.Time `json:"date" validate:"required"`
	Time          string    `json:"time"`
	Type          string    `json:"type" validate:"omitempty,oneof=date anniversary birthday study reminder other"`
	Priority      string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	Recurring     bool      `json:"recurring"`
	RecurringType string    `json:"recurring_type" validate:"omitempty,oneof=daily weekly monthly yearly"`
	Notified      bool      `json:"notified"`
}
