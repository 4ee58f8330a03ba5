package dto

import "time"

// StudyItemRequest carries the full editable study item record.
type StudyItemRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Type        string     `json:"type" validate:"required,oneof=assignment exam project reading flashcard note timer"`
	Subject     string     `json:"subject"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"due_date"`
	Completed   bool       `json:"completed"`
	TimeSpent   int        `json:"time_spent" validate:"omitempty,min=0"`
	Progress    int        `json:"progress" validate:"omitempty,min=0,max=100"`
}
