package models

import (
	"time"

	"github.com/lib/pq"
)

// Photo represents an uploaded gallery image. The file itself lives on disk
// under the uploads directory; Filename is the generated on-disk name.
type Photo struct {
	ID           string         `db:"id" json:"id"`
	Title        string         `db:"title" json:"title"`
	Description  string         `db:"description" json:"description"`
	Filename     string         `db:"filename" json:"filename"`
	OriginalName string         `db:"original_name" json:"original_name"`
	Size         int64          `db:"size" json:"size"`
	Tags         pq.StringArray `db:"tags" json:"tags"`
	Favorite     bool           `db:"favorite" json:"favorite"`
	UploadDate   time.Time      `db:"upload_date" json:"upload_date"`
}
