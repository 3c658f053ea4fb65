package client

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DownloadFallbackError reports a failed download together with the asset
// URL so the caller can hand the link to the user directly.
type DownloadFallbackError struct {
	URL string
	Err error
}

func (e *DownloadFallbackError) Error() string {
	return fmt.Sprintf("download failed, open the URL directly: %s: %v", e.URL, e.Err)
}

func (e *DownloadFallbackError) Unwrap() error {
	return e.Err
}

// Download fetches the asset at url into destDir, named after the title.
// Any failure is wrapped in DownloadFallbackError carrying the URL.
func Download(url, title, destDir string) (string, error) {
	httpClient := &http.Client{Timeout: 10 * time.Minute}

	resp, err := httpClient.Get(url)
	if err != nil {
		return "", &DownloadFallbackError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &DownloadFallbackError{URL: url, Err: fmt.Errorf("HTTP %d", resp.StatusCode)}
	}

	dest := filepath.Join(destDir, downloadFileName(title))
	out, err := os.Create(dest)
	if err != nil {
		return "", &DownloadFallbackError{URL: url, Err: err}
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		os.Remove(dest)
		return "", &DownloadFallbackError{URL: url, Err: err}
	}
	return dest, nil
}

func downloadFileName(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	name := b.String()
	if name == "" {
		name = "video"
	}
	if !strings.HasSuffix(name, ".mp4") {
		name += ".mp4"
	}
	return name
}
