package photos

import (
	"time"
)

// Photo is an image attached to a review. Filename is the original upload
// name; Filepath is the uuid-based name of the stored file under the upload
// directory, which the router serves at /uploads/.
type Photo struct {
	ID        int64     `json:"id" db:"id"`
	ReviewID  int64     `json:"review_id" db:"review_id"`
	Filename  string    `json:"filename" db:"filename"`
	Filepath  string    `json:"filepath" db:"filepath"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// URL returns the public path the stored file is served from.
func (p *Photo) URL() string {
	return "/uploads/" + p.Filepath
}
