// main.go
package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gewnthar/imagefetch/config"
	"github.com/gewnthar/imagefetch/database"
	"github.com/gewnthar/imagefetch/models"
	"github.com/gewnthar/imagefetch/services"
)

func main() {
	log.Println("Starting image fetcher...")

	configPath := config.FindConfigFile()
	if err := config.LoadConfig(configPath, ".env"); err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	cfg := config.AppConfig
	log.Printf("Configuration loaded. Output dir: %s", cfg.OutputDir)

	client := &http.Client{Timeout: cfg.HTTP.Timeout}

	entries, err := services.BuildEntryTable(cfg, client)
	if err != nil {
		log.Fatalf("Error building download table: %v", err)
	}

	fetcher := services.NewBatchFetcher(cfg.OutputDir, client)
	fetcher.UserAgent = cfg.HTTP.UserAgent

	if cfg.Database.Enabled {
		// History is best-effort; downloads still run without it.
		if err := database.InitDB(cfg.Database); err != nil {
			log.Printf("ERROR: Download history disabled: %v", err)
		} else {
			defer database.CloseDB()
			if err := database.EnsureSchema(); err != nil {
				log.Printf("ERROR: Download history disabled: %v", err)
			} else {
				fetcher.Recorder = database.HistoryRecorder{}
			}
		}
	}

	results, summary, err := fetcher.Run(entries)
	if err != nil {
		log.Fatalf("Error preparing output directory: %v", err)
	}
	if summary.Failed > 0 {
		log.Printf("WARN: %d of %d images failed to download", summary.Failed, summary.Attempted)
	}
	if fetcher.Recorder != nil {
		logRecentHistory(summary, database.GetRecentDownloads)
	}

	if cfg.Report.Path != "" {
		if err := services.WriteReport(cfg.Report.Path, results); err != nil {
			log.Printf("ERROR: %v", err)
		}
	}
}

// logRecentHistory reads back the rows this run wrote and logs one line per attempt.
// It returns how many rows were logged.
func logRecentHistory(summary models.BatchSummary, fetch func(limit int) ([]models.DownloadRecord, error)) int {
	if summary.Attempted == 0 {
		return 0
	}
	records, err := fetch(summary.Attempted)
	if err != nil {
		log.Printf("ERROR: Failed to read download history: %v", err)
		return 0
	}
	for _, r := range records {
		line := r.StartedAt.Format(time.RFC3339) + " " + r.Filename + " " + r.Status
		if r.ErrorMessage != "" {
			line += ": " + r.ErrorMessage
		}
		log.Printf("History: %s", line)
	}
	return len(records)
}
