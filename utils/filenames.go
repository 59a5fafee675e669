// utils/filenames.go
package utils

import (
	"net/url"
	"path"
	"strings"

	"github.com/gewnthar/imagefetch/models"
)

// DuplicateFilenames returns every filename that appears more than once, in order of
// its second appearance. Later entries overwrite earlier ones on disk.
func DuplicateFilenames(entries []models.DownloadEntry) []string {
	seen := make(map[string]int, len(entries))
	var dups []string
	for _, e := range entries {
		seen[e.Filename]++
		if seen[e.Filename] == 2 {
			dups = append(dups, e.Filename)
		}
	}
	return dups
}

// IsSafeFilename rejects names that would escape the output directory.
func IsSafeFilename(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return false
	}
	return true
}

// FilenameFromURL derives a local filename from the last path segment of rawURL.
// Returns "" when the URL has no usable segment.
func FilenameFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	base := path.Base(u.Path)
	if base == "/" || base == "." {
		return ""
	}
	if !IsSafeFilename(base) {
		return ""
	}
	return base
}
