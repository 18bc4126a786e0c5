package image

import (
	"context"
	"math/rand"
	"time"

	"codeberg.org/ilkow/promoshot/internal/keyword"
	"codeberg.org/ilkow/promoshot/internal/promo"
)

// broaderQuery is the fixed second-tier query used when the keyword
// search comes back empty.
const broaderQuery = "business marketing"

// orderings are the randomized result orderings used to diversify
// repeated searches for the same caption.
var orderings = []string{"relevant", "latest", "popular"}

// Result is the outcome of a resolution: always a usable image URL,
// possibly a placeholder.
type Result struct {
	URL               string // Image URL to display and composite
	SourceDescription string // Attribution or placeholder label
	Placeholder       bool   // True when URL points at a stand-in image
}

// Resolver turns keyword sets into image URLs. Its contract is "always
// succeeds": configuration gaps, network errors and empty search results
// all degrade to placeholder URLs instead of propagating.
type Resolver struct {
	searcher Searcher // nil when no credential is configured
	rng      *rand.Rand
}

// NewResolver creates a resolver backed by the given searcher. A nil
// searcher puts the resolver into placeholder mode. The random source is
// injectable so tests can pin page, ordering and result selection.
func NewResolver(searcher Searcher, rng *rand.Rand) *Resolver {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Resolver{searcher: searcher, rng: rng}
}

// Resolve finds an image for the given keywords and aspect ratio. It
// never returns an error: the worst case is an "error loading image"
// placeholder.
func (r *Resolver) Resolve(ctx context.Context, keywords keyword.Set, ratio promo.AspectRatio) Result {
	if r.searcher == nil {
		return Result{
			URL:               placeholderURL(ratio, labelNoAPIKey),
			SourceDescription: labelNoAPIKey,
			Placeholder:       true,
		}
	}

	opts := DefaultSearchOptions(keywords.Query())
	opts.Orientation = ratio.Orientation()
	opts.Page = 1 + r.rng.Intn(3)
	opts.OrderBy = orderings[r.rng.Intn(len(orderings))]

	results, err := r.searcher.Search(ctx, opts)
	if err != nil {
		return r.errorResult(ratio)
	}

	if len(results) == 0 {
		return r.resolveBroader(ctx, ratio)
	}

	return r.pick(results)
}

// resolveBroader issues the single fixed fallback query. No page or
// ordering randomization here, only the result pick stays random.
func (r *Resolver) resolveBroader(ctx context.Context, ratio promo.AspectRatio) Result {
	opts := DefaultSearchOptions(broaderQuery)
	opts.Orientation = ratio.Orientation()

	results, err := r.searcher.Search(ctx, opts)
	if err != nil {
		return r.errorResult(ratio)
	}

	if len(results) == 0 {
		return Result{
			URL:               placeholderURL(ratio, labelNoImageFound),
			SourceDescription: labelNoImageFound,
			Placeholder:       true,
		}
	}

	return r.pick(results)
}

// pick selects one result uniformly at random from the returned page.
func (r *Resolver) pick(results []SearchResult) Result {
	chosen := results[r.rng.Intn(len(results))]
	return Result{
		URL:               chosen.URL(),
		SourceDescription: chosen.Attribution,
	}
}

func (r *Resolver) errorResult(ratio promo.AspectRatio) Result {
	return Result{
		URL:               placeholderURL(ratio, labelLoadError),
		SourceDescription: labelLoadError,
		Placeholder:       true,
	}
}
