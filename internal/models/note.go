package models

import (
	"time"

	"github.com/lib/pq"
)

// Note is a free-form note with display hints used by the client.
type Note struct {
	ID        string         `db:"id" json:"id"`
	Title     string         `db:"title" json:"title"`
	Content   string         `db:"content" json:"content"`
	Type      string         `db:"note_type" json:"type"`
	Tags      pq.StringArray `db:"tags" json:"tags"`
	Color     string         `db:"color" json:"color"`
	Pinned    bool           `db:"pinned" json:"pinned"`
	Mood      string         `db:"mood" json:"mood"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt time.Time      `db:"updated_at" json:"updated_at"`
}
