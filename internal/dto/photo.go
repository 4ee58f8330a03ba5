package dto

// PhotoMetadata carries the optional multipart form fields accompanying an
// upload.
type PhotoMetadata struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

// PhotoUpdateRequest edits gallery metadata without touching the stored file.
type PhotoUpdateRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Favorite    bool     `json:"favorite"`
}
