// scraper/image_downloader.go
package scraper

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
)

// ErrBadStatus is wrapped by DownloadFile when the server answers with a non-2xx code.
var ErrBadStatus = errors.New("unexpected HTTP status")

// DownloadFile downloads url and streams the body into localSavePath, creating or
// truncating it. The status is checked before the file is opened, so a rejected
// request leaves nothing on disk. A failure while copying can leave a partial file.
// It returns the number of bytes written and the HTTP status code (0 if no response).
func DownloadFile(client *http.Client, userAgent string, url string, localSavePath string) (int64, int, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to build GET request for %s: %w", url, err)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to make GET request to %s: %w", url, err)
	}
	defer resp.Body.Close()

	if !isSuccessStatus(resp.StatusCode) {
		return 0, resp.StatusCode, fmt.Errorf("%w: %s returned %d %s", ErrBadStatus, url, resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	outFile, err := os.Create(localSavePath)
	if err != nil {
		return 0, resp.StatusCode, fmt.Errorf("failed to create local file %s: %w", localSavePath, err)
	}

	n, copyErr := io.Copy(outFile, resp.Body)
	closeErr := outFile.Close()
	if copyErr != nil {
		return n, resp.StatusCode, fmt.Errorf("failed to copy downloaded content to %s: %w", localSavePath, copyErr)
	}
	if closeErr != nil {
		return n, resp.StatusCode, fmt.Errorf("failed to close %s: %w", localSavePath, closeErr)
	}

	return n, resp.StatusCode, nil
}

// isSuccessStatus accepts any 2xx code.
func isSuccessStatus(code int) bool {
	return code >= 200 && code <= 299
}
