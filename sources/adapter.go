package sources

import (
	"context"

	"github.com/raushankrgupta/stylefinder/models"
)

// Adapter is one integration with an external product source. Implementations
// never return an error: any network, parsing, timeout, or credential failure
// is absorbed inside the adapter and surfaced as an empty result, so the
// aggregator can fan out over every registered source uniformly.
type Adapter interface {
	// Name is the human-readable source label shown on candidates
	Name() string
	// NetworkID identifies the affiliate network, or models.NetworkDirect
	NetworkID() string
	// Search returns candidate products for the query, native relevance order
	Search(ctx context.Context, query, category string) []models.CandidateProduct
}

// ImageSearcher is implemented by sources that serve images rather than
// purchasable items. Same failure policy as Adapter.
type ImageSearcher interface {
	SearchImages(ctx context.Context, query string) []models.ImageResult
}
