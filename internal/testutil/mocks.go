package testutil

import (
	"context"

	imgsearch "codeberg.org/ilkow/promoshot/internal/image"
)

// MockSearcher implements image.Searcher with canned results for tests
// outside the image package.
type MockSearcher struct {
	Results []imgsearch.SearchResult
	Err     error
	Calls   []*imgsearch.SearchOptions
}

// Search records the options and returns the canned results.
func (m *MockSearcher) Search(ctx context.Context, opts *imgsearch.SearchOptions) ([]imgsearch.SearchResult, error) {
	copied := *opts
	m.Calls = append(m.Calls, &copied)

	if m.Err != nil {
		return nil, m.Err
	}
	return m.Results, nil
}

// Name returns the mock provider name.
func (m *MockSearcher) Name() string {
	return "mock"
}

// SingleResultSearcher builds a MockSearcher serving one result that
// points at the given image URL.
func SingleResultSearcher(url string) *MockSearcher {
	return &MockSearcher{
		Results: []imgsearch.SearchResult{{
			ID:          "mock-1",
			RegularURL:  url,
			Attribution: "Photo by Mock on Unsplash",
			Source:      "unsplash",
		}},
	}
}
