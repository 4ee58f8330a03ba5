package dto

// NoteRequest carries the full editable note record.
type NoteRequest struct {
	Title   string   `json:"title" validate:"required"`
	Content string   `json:"content" validate:"required"`
	Type    string   `json:"type" validate:"omitempty,oneof=love-note study-note reminder memory other"`
	Tags    []string `json:"tags"`
	Color   string   `json:"color"`
	Pinned  bool     `json:"pinned"`
	Mood    string   `json:"mood" validate:"omitempty,oneof=happy love excited calm motivated grateful other"`
}
