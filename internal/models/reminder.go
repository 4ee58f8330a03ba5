package models

import "time"

// Reminder broadcast event names, matching the stream event kinds the client
// subscribes to.
const (
	ReminderEventSweet    = "sweetReminder"
	ReminderEventUpcoming = "eventReminder"
)

// ReminderMessage is the transient payload fanned out to connected clients.
// It is constructed per dispatch and never persisted. Event is only set for
// upcoming-event reminders.
type ReminderMessage struct {
	Message   string    `json:"message"`
	Event     *Event    `json:"event,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
