package models

import "time"

// StudyItem tracks an assignment, exam or other piece of study work.
type StudyItem struct {
	ID          string     `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description"`
	Type        string     `db:"item_type" json:"type"`
	Subject     string     `db:"subject" json:"subject"`
	Priority    string     `db:"priority" json:"priority"`
	DueDate     *time.Time `db:"due_date" json:"due_date,omitempty"`
	Completed   bool       `db:"completed" json:"completed"`
	TimeSpent   int        `db:"time_spent" json:"time_spent"`
	Progress    int        `db:"progress" json:"progress"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}
