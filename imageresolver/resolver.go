package imageresolver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/raushankrgupta/stylefinder/fetch"
	"github.com/raushankrgupta/stylefinder/sources"
)

// Request describes one outfit item that needs a displayable image.
type Request struct {
	Name  string
	Brand string
	// WebsiteHint is a retailer domain worth trying first (e.g. "zara.com")
	WebsiteHint string
	// CandidateImageURL is an image the caller already has but does not trust
	CandidateImageURL string
	// ProductPageURL is a known product page to scrape for an image
	ProductPageURL string
	Category       string
}

// strategy is one step of the cascade. An empty return means "didn't work,
// try the next one".
type strategy struct {
	name string
	run  func(ctx context.Context, req Request) string
}

// Resolver turns an outfit item into a guaranteed-displayable image URL by
// walking an ordered list of strategies and closing with a static fallback
// that cannot fail. Resolve is a total function: it never errors and never
// returns an empty string.
//
// Strategies run strictly in sequence per item; each is a fallback for the
// previous, not an alternative to race. Independent items may be resolved
// concurrently; the resolver keeps no per-resolution state.
type Resolver struct {
	fetcher    *fetch.Fetcher
	client     *http.Client
	images     sources.ImageSearcher
	strategies []strategy
}

// New builds a resolver. images may be nil, which simply disables the
// image-search strategy.
func New(fetcher *fetch.Fetcher, images sources.ImageSearcher) *Resolver {
	if fetcher == nil {
		fetcher = fetch.NewFetcher()
	}
	r := &Resolver{
		fetcher: fetcher,
		client:  &http.Client{Timeout: 10 * time.Second},
		images:  images,
	}
	r.strategies = []strategy{
		{"existing-url", r.validateExisting},
		{"product-page", r.scrapeProductPage},
		{"search-results", r.scrapeSearchResults},
		{"brand-api", r.brandLookup},
		{"image-search", r.imageSearch},
	}
	return r
}

// Resolve returns a validated image URL for the item. Every strategy output
// is validated before being accepted; a strategy that panics counts as a
// failed strategy. The static fallback closes the chain unconditionally.
func (r *Resolver) Resolve(ctx context.Context, req Request) string {
	for _, s := range r.strategies {
		if url := runGuarded(ctx, s, req); url != "" {
			fmt.Printf("[ImageResolver] %q via %s\n", req.Name, s.name)
			return url
		}
	}
	return FallbackImage(req.Brand, req.Name)
}

func runGuarded(ctx context.Context, s strategy, req Request) (url string) {
	defer func() {
		if rec := recover(); rec != nil {
			fmt.Printf("[ImageResolver] strategy %s panicked: %v\n", s.name, rec)
			url = ""
		}
	}()
	return s.run(ctx, req)
}

// validate confirms a candidate URL actually serves an image.
func (r *Resolver) validate(ctx context.Context, url string) bool {
	return fetch.ValidateImageURL(ctx, r.client, url)
}
