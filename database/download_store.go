// database/download_store.go
package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/gewnthar/imagefetch/models"
)

var errNoDB = errors.New("database connection is not initialized")

const createDownloadsTable = `
	CREATE TABLE IF NOT EXISTS image_downloads (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		filename VARCHAR(255) NOT NULL,
		source_url TEXT NOT NULL,
		local_path VARCHAR(1024) NOT NULL,
		status VARCHAR(16) NOT NULL,
		http_status INT NOT NULL DEFAULT 0,
		bytes_written BIGINT NOT NULL DEFAULT 0,
		error_message TEXT NULL,
		started_at DATETIME(3) NOT NULL,
		finished_at DATETIME(3) NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_image_downloads_filename (filename)
	)`

// EnsureSchema creates the image_downloads table if it does not exist.
func EnsureSchema() error {
	if DB == nil {
		return errNoDB
	}
	if _, err := DB.Exec(createDownloadsTable); err != nil {
		return fmt.Errorf("failed to create image_downloads table: %w", err)
	}
	return nil
}

// LogImageDownload inserts one row for a download attempt.
func LogImageDownload(result models.DownloadResult) error {
	if DB == nil {
		return errNoDB
	}

	var errMsg sql.NullString
	if result.Error != "" {
		errMsg = sql.NullString{String: result.Error, Valid: true}
	}
	var finished sql.NullTime
	if !result.FinishedAt.IsZero() {
		finished = sql.NullTime{Time: result.FinishedAt, Valid: true}
	}

	_, err := DB.Exec(`
		INSERT INTO image_downloads (
			filename, source_url, local_path, status,
			http_status, bytes_written, error_message, started_at, finished_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		result.Filename, result.SourceURL, result.LocalPath, result.Status,
		result.HTTPStatus, result.BytesWritten, errMsg, result.StartedAt, finished,
	)
	if err != nil {
		return fmt.Errorf("failed to log download of %s: %w", result.Filename, err)
	}
	return nil
}

// GetRecentDownloads returns up to limit history rows, newest first.
func GetRecentDownloads(limit int) ([]models.DownloadRecord, error) {
	if DB == nil {
		return nil, errNoDB
	}
	if limit <= 0 {
		limit = 100
	}

	rows, err := DB.Query(`
		SELECT id, filename, source_url, local_path, status, http_status,
		       bytes_written, error_message, started_at, finished_at, created_at
		FROM image_downloads
		ORDER BY started_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query image_downloads: %w", err)
	}
	defer rows.Close()

	var records []models.DownloadRecord
	for rows.Next() {
		var r models.DownloadRecord
		var errMsg sql.NullString
		var finished sql.NullTime

		err := rows.Scan(
			&r.ID, &r.Filename, &r.SourceURL, &r.LocalPath, &r.Status, &r.HTTPStatus,
			&r.BytesWritten, &errMsg, &r.StartedAt, &finished, &r.CreatedAt,
		)
		if err != nil {
			log.Printf("ERROR Database: Failed to scan image_downloads row: %v", err)
			continue
		}
		if errMsg.Valid {
			r.ErrorMessage = errMsg.String
		}
		if finished.Valid {
			r.FinishedAt = &finished.Time
		}
		records = append(records, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating image_downloads rows: %w", err)
	}
	return records, nil
}

// HistoryRecorder hands batch results to LogImageDownload.
type HistoryRecorder struct{}

func (HistoryRecorder) LogImageDownload(result models.DownloadResult) error {
	return LogImageDownload(result)
}
