package image

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// DownloadOptions configures image download behavior
type DownloadOptions struct {
	MaxSizeBytes int64         // Maximum file size to download (0 = no limit)
	Timeout      time.Duration // Per-request timeout
}

// DefaultDownloadOptions returns sensible defaults for background downloads
func DefaultDownloadOptions() *DownloadOptions {
	return &DownloadOptions{
		MaxSizeBytes: 15 * 1024 * 1024, // 15MB
		Timeout:      30 * time.Second,
	}
}

// Downloader fetches resolved image URLs for compositing and saves
// attribution alongside generated artifacts.
type Downloader struct {
	httpClient *http.Client
	options    *DownloadOptions
}

// NewDownloader creates a new image downloader
func NewDownloader(options *DownloadOptions) *Downloader {
	if options == nil {
		options = DefaultDownloadOptions()
	}
	return &Downloader{
		httpClient: &http.Client{Timeout: options.Timeout},
		options:    options,
	}
}

// Fetch downloads the image at the given URL into memory.
func (d *Downloader) Fetch(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create download request: %w", err)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download failed with status %d", resp.StatusCode)
	}

	reader := io.Reader(resp.Body)
	if d.options.MaxSizeBytes > 0 {
		reader = io.LimitReader(resp.Body, d.options.MaxSizeBytes+1)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}

	if d.options.MaxSizeBytes > 0 && int64(len(data)) > d.options.MaxSizeBytes {
		return nil, fmt.Errorf("image exceeds maximum size of %d bytes", d.options.MaxSizeBytes)
	}

	return data, nil
}

// SaveAttribution writes the attribution text next to a generated
// artifact. Missing attribution is not an error.
func SaveAttribution(dir, attribution string) error {
	if attribution == "" {
		return nil
	}

	attrPath := filepath.Join(dir, "attribution.txt")
	if err := os.WriteFile(attrPath, []byte(attribution+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to save attribution: %w", err)
	}

	return nil
}
