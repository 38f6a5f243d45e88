package cache

import (
	"context"
	"strings"
	"time"

	"github.com/raushankrgupta/stylefinder/models"
)

// DefaultTTL bounds how long a styled look stays reusable; price and
// availability data goes stale quickly.
const DefaultTTL = 10 * time.Minute

// LookCache stores fully enriched outfits keyed by normalized query. A miss
// and an internal error look the same to callers: (nil, false).
type LookCache interface {
	Get(ctx context.Context, key string) (*models.EnrichedOutfit, bool)
	Set(ctx context.Context, key string, outfit *models.EnrichedOutfit)
	Evict(ctx context.Context, key string)
}

// NormalizeKey collapses case and whitespace so "Office Party  LOOK" and
// "office party look" share a cache entry.
func NormalizeKey(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(query)), " ")
}
