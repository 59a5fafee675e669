// models/meta.go
package models

import "time"

// DownloadRecord is a row of the image_downloads history table.
type DownloadRecord struct {
	ID           int64      `db:"id" json:"id"`
	Filename     string     `db:"filename" json:"filename"`
	SourceURL    string     `db:"source_url" json:"source_url"`
	LocalPath    string     `db:"local_path" json:"local_path"`
	Status       string     `db:"status" json:"status"` // "downloaded" or "failed"
	HTTPStatus   int        `db:"http_status" json:"http_status,omitempty"`
	BytesWritten int64      `db:"bytes_written" json:"bytes_written"`
	ErrorMessage string     `db:"error_message" json:"error_message,omitempty"`
	StartedAt    time.Time  `db:"started_at" json:"started_at"`
	FinishedAt   *time.Time `db:"finished_at" json:"finished_at,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}
