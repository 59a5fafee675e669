// scraper/manifest.go
package scraper

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"net/url"

	"github.com/jszwec/csvutil"

	"github.com/gewnthar/imagefetch/models"
	"github.com/gewnthar/imagefetch/utils"
)

// ParseManifestCsv reads extra download entries from CSV with a "filename,url" header.
// Row order is kept. Every row must name a safe filename and an absolute http(s) URL.
func ParseManifestCsv(reader io.Reader) ([]models.DownloadEntry, error) {
	var entries []models.DownloadEntry

	decoder, err := csvutil.NewDecoder(csv.NewReader(reader))
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil // empty file, nothing to add
		}
		return nil, fmt.Errorf("failed to create CSV decoder for manifest: %w", err)
	}

	if err := decoder.Decode(&entries); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil // header only, nothing to add
		}
		return nil, fmt.Errorf("failed to decode manifest CSV data: %w", err)
	}

	for i, e := range entries {
		// header is line 1
		line := i + 2
		if !utils.IsSafeFilename(e.Filename) {
			return nil, fmt.Errorf("manifest line %d: invalid filename %q", line, e.Filename)
		}
		u, err := url.Parse(e.SourceURL)
		if err != nil {
			return nil, fmt.Errorf("manifest line %d: invalid url %q: %w", line, e.SourceURL, err)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, fmt.Errorf("manifest line %d: url %q is not an absolute http(s) URL", line, e.SourceURL)
		}
	}

	log.Printf("Scraper: Parsed %d manifest entries from CSV.\n", len(entries))
	return entries, nil
}

// WriteReportCsv writes one CSV row per download result, header first.
func WriteReportCsv(writer io.Writer, results []models.DownloadResult) error {
	b, err := csvutil.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to encode download report: %w", err)
	}
	if _, err := writer.Write(b); err != nil {
		return fmt.Errorf("failed to write download report: %w", err)
	}
	return nil
}
