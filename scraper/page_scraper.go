// scraper/page_scraper.go
package scraper

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gewnthar/imagefetch/models"
	"github.com/gewnthar/imagefetch/utils"
)

// DiscoverImages fetches pageURL and turns every element matched by selector into a
// download entry. Image URLs come from src (or data-src for lazy-loaded images) and are
// resolved against the page URL. data: URIs, unnamed paths and repeated filenames are skipped.
func DiscoverImages(client *http.Client, userAgent string, pageURL string, selector string) ([]models.DownloadEntry, error) {
	log.Printf("Scraper: Discovering images on %s (selector: '%s')\n", pageURL, selector)

	if client == nil {
		client = http.DefaultClient
	}
	if selector == "" {
		selector = "img"
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid page URL %s: %w", pageURL, err)
	}

	req, err := http.NewRequest(http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build GET request for %s: %w", pageURL, err)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get URL %s: %w", pageURL, err)
	}
	defer res.Body.Close()

	if !isSuccessStatus(res.StatusCode) {
		return nil, fmt.Errorf("%w: %s returned %d", ErrBadStatus, pageURL, res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML from %s: %w", pageURL, err)
	}

	var entries []models.DownloadEntry
	seen := make(map[string]bool)
	doc.Find(selector).Each(func(i int, s *goquery.Selection) {
		src := strings.TrimSpace(s.AttrOr("src", ""))
		if src == "" {
			src = strings.TrimSpace(s.AttrOr("data-src", ""))
		}
		if src == "" || strings.HasPrefix(src, "data:") {
			return
		}

		ref, err := url.Parse(src)
		if err != nil {
			log.Printf("WARN Scraper: Skipping unparsable image src %q on %s: %v", src, pageURL, err)
			return
		}
		abs := base.ResolveReference(ref).String()

		name := utils.FilenameFromURL(abs)
		if name == "" {
			log.Printf("WARN Scraper: No filename in image URL %s, skipping", abs)
			return
		}
		if seen[name] {
			return
		}
		seen[name] = true
		entries = append(entries, models.DownloadEntry{Filename: name, SourceURL: abs})
	})

	log.Printf("Scraper: Found %d images on %s\n", len(entries), pageURL)
	return entries, nil
}
