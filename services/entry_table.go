// services/entry_table.go
package services

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gewnthar/imagefetch/config"
	"github.com/gewnthar/imagefetch/models"
	"github.com/gewnthar/imagefetch/scraper"
	"github.com/gewnthar/imagefetch/utils"
)

// BuildEntryTable assembles the run's table: the built-in images first, then manifest
// rows, then images discovered on the configured pages.
// A manifest that cannot be read is an error. A discovery page that fails is logged and skipped.
func BuildEntryTable(cfg config.Config, client *http.Client) ([]models.DownloadEntry, error) {
	entries := utils.DefaultEntries()

	if cfg.Manifest.Path != "" {
		file, err := os.Open(cfg.Manifest.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open manifest %s: %w", cfg.Manifest.Path, err)
		}
		defer file.Close()

		extra, err := scraper.ParseManifestCsv(file)
		if err != nil {
			return nil, fmt.Errorf("failed to parse manifest %s: %w", cfg.Manifest.Path, err)
		}
		entries = append(entries, extra...)
	}

	for _, d := range cfg.Discover {
		found, err := scraper.DiscoverImages(client, cfg.HTTP.UserAgent, d.PageURL, d.Selector)
		if err != nil {
			log.Printf("ERROR Service: Image discovery on %s failed: %v\n", d.PageURL, err)
			continue
		}
		entries = append(entries, found...)
	}

	return entries, nil
}

// WriteReport writes the CSV run report to path.
func WriteReport(path string, results []models.DownloadResult) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file %s: %w", path, err)
	}
	if err := scraper.WriteReportCsv(file, results); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close report file %s: %w", path, err)
	}
	log.Printf("Service: Wrote download report for %d entries to %s\n", len(results), path)
	return nil
}
