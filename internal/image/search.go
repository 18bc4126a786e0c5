package image

import "context"

// SearchResult represents a single image search result
type SearchResult struct {
	ID           string // Unique identifier
	RegularURL   string // Display-resolution URL, preferred for compositing
	FullURL      string // Full-resolution URL, fallback when RegularURL is absent
	ThumbnailURL string // URL to thumbnail version
	Width        int    // Image width in pixels
	Height       int    // Image height in pixels
	Description  string // Image description or tags
	Attribution  string // Attribution text if required
	Source       string // Source provider (e.g., "unsplash", "pixabay")
}

// URL returns the regular resolution URL, falling back to full resolution
// when the provider did not supply one.
func (r *SearchResult) URL() string {
	if r.RegularURL != "" {
		return r.RegularURL
	}
	return r.FullURL
}

// SearchOptions configures the image search
type SearchOptions struct {
	Query       string // Search query (English keywords)
	Orientation string // Orientation hint: "portrait", "landscape", "squarish"
	Page        int    // Page number (1-based)
	PerPage     int    // Number of results per page
	OrderBy     string // Result ordering: "relevant", "latest", "popular"
}

// DefaultSearchOptions returns sensible defaults for keyword searches
func DefaultSearchOptions(query string) *SearchOptions {
	return &SearchOptions{
		Query:   query,
		Page:    1,
		PerPage: 10,
		OrderBy: "relevant",
	}
}

// Searcher defines the interface for image search providers
type Searcher interface {
	// Search performs an image search with the given options
	Search(ctx context.Context, opts *SearchOptions) ([]SearchResult, error)

	// Name returns the name of the search provider
	Name() string
}

// SearchError represents an error from an image search provider
type SearchError struct {
	Provider string
	Code     string
	Message  string
}

func (e *SearchError) Error() string {
	return e.Provider + ": " + e.Message
}

// RateLimitError indicates that the API rate limit has been exceeded
type RateLimitError struct {
	Provider     string
	RetryAfter   int // Seconds to wait before retry
	LimitPerHour int
}

func (e *RateLimitError) Error() string {
	return e.Provider + ": rate limit exceeded"
}
