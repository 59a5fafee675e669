// services/batch_fetcher.go
package services

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gewnthar/imagefetch/models"
	"github.com/gewnthar/imagefetch/scraper"
	"github.com/gewnthar/imagefetch/utils"
)

// Recorder receives the result of every attempt. database.HistoryRecorder implements it.
type Recorder interface {
	LogImageDownload(result models.DownloadResult) error
}

// BatchFetcher downloads a table of entries into OutputDir, one at a time, in order.
// Each entry gets exactly one attempt; a failed entry never stops the batch.
type BatchFetcher struct {
	OutputDir string
	Client    *http.Client
	UserAgent string
	Out       io.Writer // progress lines, os.Stdout when nil
	Recorder  Recorder  // optional

	now func() time.Time
}

// NewBatchFetcher returns a fetcher writing progress to stdout.
// A nil client means a zero http.Client, i.e. no timeout.
func NewBatchFetcher(outputDir string, client *http.Client) *BatchFetcher {
	if client == nil {
		client = &http.Client{}
	}
	return &BatchFetcher{
		OutputDir: outputDir,
		Client:    client,
		Out:       os.Stdout,
		now:       time.Now,
	}
}

// EnsureOutputDir creates the output directory and any missing parents.
func (f *BatchFetcher) EnsureOutputDir() error {
	if f.OutputDir == "" {
		return errors.New("output directory is not configured")
	}
	if err := os.MkdirAll(f.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", f.OutputDir, err)
	}
	return nil
}

// FetchEntry downloads one entry to <OutputDir>/<Filename> and reports the outcome.
// Errors are printed and carried in the result, never returned.
func (f *BatchFetcher) FetchEntry(entry models.DownloadEntry) models.DownloadResult {
	localPath := filepath.Join(f.OutputDir, entry.Filename)
	result := models.DownloadResult{
		Filename:  entry.Filename,
		SourceURL: entry.SourceURL,
		LocalPath: localPath,
		StartedAt: f.clock(),
	}

	f.printf("Downloading %s...\n", entry.Filename)

	n, code, err := scraper.DownloadFile(f.Client, f.UserAgent, entry.SourceURL, localPath)
	result.BytesWritten = n
	result.HTTPStatus = code
	result.FinishedAt = f.clock()

	if err != nil {
		result.Status = models.StatusFailed
		result.Error = err.Error()
		f.printf("Failed to download %s: %v\n", entry.Filename, err)
		return result
	}

	result.Status = models.StatusDownloaded
	f.printf("Downloaded %s\n", entry.Filename)
	return result
}

// Run ensures the output directory exists, then fetches every entry in table order.
// The only error returned is a failure to create the output directory.
func (f *BatchFetcher) Run(entries []models.DownloadEntry) ([]models.DownloadResult, models.BatchSummary, error) {
	var summary models.BatchSummary

	if err := f.EnsureOutputDir(); err != nil {
		return nil, summary, err
	}

	for _, dup := range utils.DuplicateFilenames(entries) {
		log.Printf("WARN Service: Filename %s appears more than once; the last entry wins.\n", dup)
	}

	results := make([]models.DownloadResult, 0, len(entries))
	for _, entry := range entries {
		result := f.FetchEntry(entry)
		results = append(results, result)

		summary.Attempted++
		if result.Succeeded() {
			summary.Succeeded++
		} else {
			summary.Failed++
		}

		if f.Recorder != nil {
			if err := f.Recorder.LogImageDownload(result); err != nil {
				log.Printf("ERROR Service: Failed to record download of %s: %v\n", entry.Filename, err)
			}
		}
	}

	log.Printf("Service: Batch finished. Attempted: %d, Downloaded: %d, Failed: %d\n",
		summary.Attempted, summary.Succeeded, summary.Failed)
	return results, summary, nil
}

func (f *BatchFetcher) printf(format string, args ...interface{}) {
	out := f.Out
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintf(out, format, args...)
}

func (f *BatchFetcher) clock() time.Time {
	if f.now == nil {
		return time.Now().UTC()
	}
	return f.now().UTC()
}
