// models/entry.go
package models

import "time"

// DownloadEntry is one (filename, URL) pair of the image table.
// Filename is relative to the output directory.
type DownloadEntry struct {
	Filename  string `csv:"filename" json:"filename"`
	SourceURL string `csv:"url" json:"url"`
}

// Download statuses recorded per attempt.
const (
	StatusDownloaded = "downloaded"
	StatusFailed     = "failed"
)

// DownloadResult is the outcome of a single fetch attempt.
type DownloadResult struct {
	Filename     string    `csv:"filename" db:"filename"`
	SourceURL    string    `csv:"url" db:"source_url"`
	LocalPath    string    `csv:"local_path" db:"local_path"`
	Status       string    `csv:"status" db:"status"`
	HTTPStatus   int       `csv:"http_status" db:"http_status"` // 0 when no response was received
	BytesWritten int64     `csv:"bytes" db:"bytes_written"`
	Error        string    `csv:"error,omitempty" db:"error_message"`
	StartedAt    time.Time `csv:"started_at" db:"started_at"`
	FinishedAt   time.Time `csv:"finished_at" db:"finished_at"`
}

// Succeeded reports whether the file was fully written.
func (r DownloadResult) Succeeded() bool {
	return r.Status == StatusDownloaded
}

// BatchSummary counts the outcomes of one run.
type BatchSummary struct {
	Attempted int
	Succeeded int
	Failed    int
}
