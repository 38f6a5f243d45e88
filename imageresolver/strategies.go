package imageresolver

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/raushankrgupta/stylefinder/fetch"
)

// maxSearchResultCandidates bounds how many listing images a search-result
// scrape will validate before giving up on the strategy.
const maxSearchResultCandidates = 5

// validateExisting accepts a caller-supplied image URL if it is reachable and
// serves an image. When it succeeds none of the scrape strategies run.
func (r *Resolver) validateExisting(ctx context.Context, req Request) string {
	if req.CandidateImageURL == "" {
		return ""
	}
	if r.validate(ctx, req.CandidateImageURL) {
		return req.CandidateImageURL
	}
	return ""
}

// scrapeProductPage fetches a known product page and extracts its primary
// image, preferring a site-specific extractor over the generic meta-tag one.
func (r *Resolver) scrapeProductPage(ctx context.Context, req Request) string {
	if req.ProductPageURL == "" {
		return ""
	}

	doc, err := r.fetcher.Document(ctx, req.ProductPageURL, fetch.LooksRendered)
	if err != nil {
		fmt.Printf("[ImageResolver] product page fetch failed: %v\n", err)
		return ""
	}

	host := hostOf(req.ProductPageURL)
	var candidates []string
	if site, ok := siteFor(host); ok && site.extractProductImages != nil {
		candidates = site.extractProductImages(doc)
	}
	if len(candidates) == 0 {
		candidates = genericProductImages(doc)
	}

	base, _ := url.Parse(req.ProductPageURL)
	for _, c := range candidates {
		abs := absoluteURL(base, c)
		if r.validate(ctx, abs) {
			return abs
		}
	}
	return ""
}

// scrapeSearchResults synthesizes a retailer search URL from brand+name,
// fetches the listing and tries the first few plausible product images.
func (r *Resolver) scrapeSearchResults(ctx context.Context, req Request) string {
	query := strings.TrimSpace(req.Brand + " " + req.Name)
	if query == "" {
		return ""
	}

	site, ok := siteFor(req.WebsiteHint)
	if !ok || site.searchURL == nil {
		// No usable hint: fall back to the brand's own storefront if we know it
		site, ok = siteForBrand(req.Brand)
		if !ok || site.searchURL == nil {
			return ""
		}
	}

	searchURL := site.searchURL(query)
	doc, err := r.fetcher.Document(ctx, searchURL, fetch.LooksRendered)
	if err != nil {
		fmt.Printf("[ImageResolver] search page fetch failed: %v\n", err)
		return ""
	}

	candidates := site.extractListingImages(doc)
	if len(candidates) > maxSearchResultCandidates {
		candidates = candidates[:maxSearchResultCandidates]
	}

	base, _ := url.Parse(searchURL)
	for _, c := range candidates {
		abs := absoluteURL(base, c)
		if r.validate(ctx, abs) {
			return abs
		}
	}
	return ""
}

// brandLookup queries a recognized brand's own product-search endpoint.
func (r *Resolver) brandLookup(ctx context.Context, req Request) string {
	lookup, ok := brandAPIFor(req.Brand)
	if !ok {
		return ""
	}
	imageURL := lookup(ctx, r.client, req.Name)
	if imageURL != "" && r.validate(ctx, imageURL) {
		return imageURL
	}
	return ""
}

// imageSearch asks the external image-search source, preferring results
// hosted on known fashion retailers.
func (r *Resolver) imageSearch(ctx context.Context, req Request) string {
	if r.images == nil {
		return ""
	}

	query := strings.TrimSpace(fmt.Sprintf("%s %s product image", req.Brand, req.Name))
	results := r.images.SearchImages(ctx, query)
	if len(results) == 0 {
		return ""
	}

	for _, res := range results {
		if isKnownRetailerDomain(res.SourceLink) && r.validate(ctx, res.URL) {
			return res.URL
		}
	}
	for _, res := range results {
		if r.validate(ctx, res.URL) {
			return res.URL
		}
	}
	return ""
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

func absoluteURL(base *url.URL, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "//") {
		return "https:" + ref
	}
	if strings.HasPrefix(ref, "http") {
		return ref
	}
	if base == nil {
		return ref
	}
	parsed, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(parsed).String()
}
