package image

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"codeberg.org/ilkow/promoshot/internal/keyword"
	"codeberg.org/ilkow/promoshot/internal/promo"
)

func fixedRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestResolve_NoCredential(t *testing.T) {
	resolver := NewResolver(nil, fixedRand())

	result := resolver.Resolve(context.Background(), keyword.Set{"burger"}, promo.RatioSquare)

	if !result.Placeholder {
		t.Error("Expected a placeholder result without a credential")
	}

	if !strings.Contains(result.URL, "No+API+Key") {
		t.Errorf("Expected No+API+Key placeholder URL, got %s", result.URL)
	}
}

func TestResolve_NoCredential_NoNetworkCall(t *testing.T) {
	// The searcher must not be consulted in placeholder mode. A nil
	// searcher would panic if it were.
	resolver := NewResolver(nil, fixedRand())

	result := resolver.Resolve(context.Background(), keyword.Set{"burger"}, promo.RatioStory)
	if result.URL == "" {
		t.Error("Expected a usable placeholder URL")
	}
}

func TestResolve_PicksRandomResult(t *testing.T) {
	results := make([]SearchResult, 10)
	for i := range results {
		results[i] = SearchResult{
			ID:          fmt.Sprintf("%d", i),
			RegularURL:  fmt.Sprintf("https://example.com/photo%d.jpg", i),
			Attribution: fmt.Sprintf("Photo %d", i),
		}
	}

	searcher := &mockSearcher{name: "mock", searchResults: results}
	resolver := NewResolver(searcher, fixedRand())

	result := resolver.Resolve(context.Background(), keyword.Set{"coffee"}, promo.RatioWide)

	if result.Placeholder {
		t.Fatal("Expected a real result, got a placeholder")
	}
	if !strings.HasPrefix(result.URL, "https://example.com/photo") {
		t.Errorf("Unexpected URL: %s", result.URL)
	}

	// Same seed, same pick
	searcher2 := &mockSearcher{name: "mock", searchResults: results}
	resolver2 := NewResolver(searcher2, fixedRand())
	result2 := resolver2.Resolve(context.Background(), keyword.Set{"coffee"}, promo.RatioWide)

	if result.URL != result2.URL {
		t.Errorf("Expected deterministic pick with fixed seed: %s vs %s", result.URL, result2.URL)
	}
}

func TestResolve_RandomizedPageAndOrder(t *testing.T) {
	searcher := &mockSearcher{name: "mock", searchResults: []SearchResult{{RegularURL: "https://example.com/a.jpg"}}}
	resolver := NewResolver(searcher, fixedRand())

	resolver.Resolve(context.Background(), keyword.Set{"coffee"}, promo.RatioStory)

	if len(searcher.calls) != 1 {
		t.Fatalf("Expected 1 search call, got %d", len(searcher.calls))
	}

	opts := searcher.calls[0]
	if opts.Page < 1 || opts.Page > 3 {
		t.Errorf("Expected page in [1,3], got %d", opts.Page)
	}

	valid := map[string]bool{"relevant": true, "latest": true, "popular": true}
	if !valid[opts.OrderBy] {
		t.Errorf("Unexpected ordering %q", opts.OrderBy)
	}

	if opts.Orientation != "portrait" {
		t.Errorf("Expected portrait orientation for 9:16, got %q", opts.Orientation)
	}
}

func TestResolve_BroaderFallback(t *testing.T) {
	// First call returns nothing, so the resolver retries with the fixed
	// broader query without randomization.
	searcher := &emptyThenResultSearcher{
		result: SearchResult{RegularURL: "https://example.com/generic.jpg", Attribution: "Generic"},
	}
	resolver := NewResolver(searcher, fixedRand())

	result := resolver.Resolve(context.Background(), keyword.Set{"obscureterm"}, promo.RatioSquare)

	if result.Placeholder {
		t.Fatal("Expected the broader query result, got a placeholder")
	}
	if result.URL != "https://example.com/generic.jpg" {
		t.Errorf("Unexpected URL: %s", result.URL)
	}

	if len(searcher.calls) != 2 {
		t.Fatalf("Expected 2 search calls, got %d", len(searcher.calls))
	}

	second := searcher.calls[1]
	if second.Query != broaderQuery {
		t.Errorf("Expected broader query %q, got %q", broaderQuery, second.Query)
	}
	if second.Page != 1 || second.OrderBy != "relevant" {
		t.Errorf("Broader query must not be randomized, got page=%d order=%s", second.Page, second.OrderBy)
	}
}

func TestResolve_NoResultsAnywhere(t *testing.T) {
	searcher := &mockSearcher{name: "mock"} // always returns zero results
	resolver := NewResolver(searcher, fixedRand())

	result := resolver.Resolve(context.Background(), keyword.Set{"nothing"}, promo.RatioLandscape)

	if !result.Placeholder {
		t.Error("Expected a placeholder result")
	}
	if !strings.Contains(result.URL, "No+Image+Found") {
		t.Errorf("Expected No+Image+Found placeholder, got %s", result.URL)
	}
}

func TestResolve_SearchErrorNeverPropagates(t *testing.T) {
	searcher := &mockSearcher{
		name:      "mock",
		searchErr: &SearchError{Provider: "mock", Code: "500", Message: "boom"},
	}
	resolver := NewResolver(searcher, fixedRand())

	result := resolver.Resolve(context.Background(), keyword.Set{"coffee"}, promo.RatioWide)

	if !result.Placeholder {
		t.Error("Expected a placeholder result on search error")
	}
	if !strings.Contains(result.URL, "Error+Loading+Image") {
		t.Errorf("Expected Error+Loading+Image placeholder, got %s", result.URL)
	}
}

func TestResolve_RegularFallsBackToFull(t *testing.T) {
	searcher := &mockSearcher{
		name:          "mock",
		searchResults: []SearchResult{{FullURL: "https://example.com/full.jpg"}},
	}
	resolver := NewResolver(searcher, fixedRand())

	result := resolver.Resolve(context.Background(), keyword.Set{"coffee"}, promo.RatioSquare)

	if result.URL != "https://example.com/full.jpg" {
		t.Errorf("Expected full URL fallback, got %s", result.URL)
	}
}

// emptyThenResultSearcher returns no results on the first call and a
// single result afterwards.
type emptyThenResultSearcher struct {
	result SearchResult
	calls  []*SearchOptions
}

func (s *emptyThenResultSearcher) Search(ctx context.Context, opts *SearchOptions) ([]SearchResult, error) {
	copied := *opts
	s.calls = append(s.calls, &copied)
	if len(s.calls) == 1 {
		return nil, nil
	}
	return []SearchResult{s.result}, nil
}

func (s *emptyThenResultSearcher) Name() string { return "empty-then-result" }
