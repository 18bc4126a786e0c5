package image

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
)

const (
	unsplashAPIURL  = "https://api.unsplash.com"
	unsplashTimeout = 30 * time.Second
)

// UnsplashClient implements Searcher for the Unsplash API
type UnsplashClient struct {
	accessKey  string
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	rateLimit  *rateLimiter
}

// unsplashSearchResponse represents the search API response
type unsplashSearchResponse struct {
	Total      int             `json:"total"`
	TotalPages int             `json:"total_pages"`
	Results    []unsplashPhoto `json:"results"`
}

// unsplashPhoto represents a photo in the response
type unsplashPhoto struct {
	ID          string            `json:"id"`
	Width       int               `json:"width"`
	Height      int               `json:"height"`
	Description string            `json:"description"`
	AltDesc     string            `json:"alt_description"`
	URLs        unsplashPhotoURLs `json:"urls"`
	User        unsplashUser      `json:"user"`
}

// unsplashPhotoURLs contains various size URLs
type unsplashPhotoURLs struct {
	Raw     string `json:"raw"`
	Full    string `json:"full"`
	Regular string `json:"regular"`
	Small   string `json:"small"`
	Thumb   string `json:"thumb"`
}

// unsplashUser represents the photo author
type unsplashUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// NewUnsplashClient creates a new Unsplash API client
func NewUnsplashClient(accessKey string) (*UnsplashClient, error) {
	if accessKey == "" {
		return nil, fmt.Errorf("Unsplash access key is required")
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "unsplash",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return &UnsplashClient{
		accessKey: accessKey,
		baseURL:   unsplashAPIURL,
		httpClient: &http.Client{
			Timeout: unsplashTimeout,
		},
		breaker:   breaker,
		rateLimit: newRateLimiter(50), // demo tier: 50 requests per hour
	}, nil
}

// SetBaseURL overrides the API endpoint, used in tests.
func (u *UnsplashClient) SetBaseURL(baseURL string) {
	u.baseURL = baseURL
}

// Search performs an image search on Unsplash
func (u *UnsplashClient) Search(ctx context.Context, opts *SearchOptions) ([]SearchResult, error) {
	u.rateLimit.wait()

	params := url.Values{}
	params.Set("query", opts.Query)
	params.Set("per_page", fmt.Sprintf("%d", opts.PerPage))
	params.Set("page", fmt.Sprintf("%d", opts.Page))

	if opts.Orientation != "" {
		params.Set("orientation", opts.Orientation)
	}
	if opts.OrderBy != "" {
		params.Set("order_by", opts.OrderBy)
	}

	// The circuit breaker sits around the whole request so that a flapping
	// API degrades to the placeholder path quickly instead of eating the
	// 30s timeout on every generation.
	res, err := u.breaker.Execute(func() (interface{}, error) {
		return u.doSearch(ctx, params)
	})
	if err != nil {
		return nil, err
	}

	searchResp := res.(*unsplashSearchResponse)

	results := make([]SearchResult, 0, len(searchResp.Results))
	for _, photo := range searchResp.Results {
		description := photo.Description
		if description == "" {
			description = photo.AltDesc
		}

		results = append(results, SearchResult{
			ID:           photo.ID,
			RegularURL:   photo.URLs.Regular,
			FullURL:      photo.URLs.Full,
			ThumbnailURL: photo.URLs.Thumb,
			Width:        photo.Width,
			Height:       photo.Height,
			Description:  description,
			Attribution:  u.formatAttribution(&photo),
			Source:       "unsplash",
		})
	}

	return results, nil
}

// doSearch issues a single search request and decodes the response.
func (u *UnsplashClient) doSearch(ctx context.Context, params url.Values) (*unsplashSearchResponse, error) {
	reqURL := u.baseURL + "/search/photos?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Client-ID "+u.accessKey)
	req.Header.Set("Accept-Version", "v1")

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &RateLimitError{
			Provider:     "unsplash",
			RetryAfter:   3600,
			LimitPerHour: 50,
		}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, &SearchError{
			Provider: "unsplash",
			Code:     "401",
			Message:  "Invalid access key",
		}
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &SearchError{
			Provider: "unsplash",
			Code:     fmt.Sprintf("%d", resp.StatusCode),
			Message:  string(body),
		}
	}

	var searchResp unsplashSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &searchResp, nil
}

// Name returns the name of the search provider
func (u *UnsplashClient) Name() string {
	return "unsplash"
}

// formatAttribution creates the proper attribution string as per Unsplash guidelines
func (u *UnsplashClient) formatAttribution(photo *unsplashPhoto) string {
	return fmt.Sprintf("Photo by %s on Unsplash", photo.User.Name)
}
