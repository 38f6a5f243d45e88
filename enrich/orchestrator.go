package enrich

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/raushankrgupta/stylefinder/aggregator"
	"github.com/raushankrgupta/stylefinder/imageresolver"
	"github.com/raushankrgupta/stylefinder/models"
)

// Searcher is the product discovery dependency; *aggregator.Aggregator
// satisfies it.
type Searcher interface {
	Aggregate(ctx context.Context, query, category string) []models.CandidateProduct
}

// ImageResolver is the guaranteed image dependency; *imageresolver.Resolver
// satisfies it. Resolve must be total: non-empty result, no error.
type ImageResolver interface {
	Resolve(ctx context.Context, req imageresolver.Request) string
}

// Orchestrator turns an AI-generated outfit into an enriched document: each
// slot item either becomes a real, purchasable product (best-ranked
// candidate) or keeps its generic identity with a guaranteed fallback image.
type Orchestrator struct {
	searcher Searcher
	ranker   aggregator.Ranker
	resolver ImageResolver
}

func New(searcher Searcher, resolver ImageResolver) *Orchestrator {
	return &Orchestrator{
		searcher: searcher,
		resolver: resolver,
	}
}

// NewWithRanker allows a non-default commission epsilon.
func NewWithRanker(searcher Searcher, resolver ImageResolver, ranker aggregator.Ranker) *Orchestrator {
	return &Orchestrator{
		searcher: searcher,
		ranker:   ranker,
		resolver: resolver,
	}
}

// Enrich resolves every slot item concurrently and assembles the final
// document only after all of them settle; no partial documents. A failure on
// one item degrades that item alone; siblings are unaffected. A nil or
// empty category simply contributes zero items.
func (o *Orchestrator) Enrich(ctx context.Context, outfit *models.GeneratedOutfit) *models.EnrichedOutfit {
	if outfit == nil {
		outfit = &models.GeneratedOutfit{}
	}

	doc := &models.EnrichedOutfit{
		MainDescription: outfit.MainDescription,
		StyleKeywords:   outfit.StyleKeywords,
	}

	enriched := make(map[string][]models.EnrichedItem, 4)
	var wg sync.WaitGroup
	for _, category := range models.Categories() {
		items := outfit.ItemsFor(category)
		slot := make([]models.EnrichedItem, len(items))
		enriched[category] = slot
		for i, item := range items {
			wg.Add(1)
			go func(slot []models.EnrichedItem, i int, item models.OutfitItem) {
				defer wg.Done()
				defer func() {
					// Anything that slips past the adapter and cascade
					// catch-alls degrades this one item, never the document.
					if r := recover(); r != nil {
						fmt.Printf("[Enrich] item %q panicked: %v\n", item.Name, r)
						slot[i] = fallbackItem(item)
					}
				}()
				slot[i] = o.enrichItem(ctx, item)
			}(slot, i, item)
		}
	}
	wg.Wait()

	doc.Tops = enriched[models.CategoryTops]
	doc.Bottoms = enriched[models.CategoryBottoms]
	doc.Accessories = enriched[models.CategoryAccessories]
	doc.Shoes = enriched[models.CategoryShoes]

	var total float64
	var realCount int
	for _, item := range doc.AllItems() {
		total += item.Price
		if item.IsRealProduct {
			realCount++
		}
	}
	doc.TotalPrice = math.Round(total*100) / 100
	doc.RealProductCount = realCount

	return doc
}

// enrichItem runs discovery then ranking for one slot item, merging the best
// candidate when there is one and falling back to a resolved image when
// there is not.
func (o *Orchestrator) enrichItem(ctx context.Context, item models.OutfitItem) models.EnrichedItem {
	query := strings.TrimSpace(item.Brand + " " + item.Name)

	ranked := o.ranker.Rank(o.searcher.Aggregate(ctx, query, item.Category))
	if len(ranked) > 0 {
		best := ranked[0]
		// The candidate's own image still goes through the cascade: its first
		// strategy validates the URL and short-circuits when it is good.
		imageURL := o.resolver.Resolve(ctx, imageresolver.Request{
			Name:              item.Name,
			Brand:             item.Brand,
			CandidateImageURL: best.PrimaryImage(),
			ProductPageURL:    best.ProductURL,
			Category:          item.Category,
		})

		return models.EnrichedItem{
			OutfitItem:     item,
			Price:          best.Price,
			Currency:       best.Currency,
			SourceName:     best.SourceName,
			ProductURL:     best.ProductURL,
			PurchaseURL:    best.PurchaseURL,
			NetworkID:      best.NetworkID,
			CommissionRate: best.CommissionRate,
			Availability:   best.Availability,
			ImageURL:       imageURL,
			IsRealProduct:  true,
			CandidateID:    best.ID,
		}
	}

	imageURL := o.resolver.Resolve(ctx, imageresolver.Request{
		Name:     item.Name,
		Brand:    item.Brand,
		Category: item.Category,
	})

	return models.EnrichedItem{
		OutfitItem:    item,
		Price:         0,
		Currency:      "USD",
		PurchaseURL:   models.PurchaseURLUnavailable,
		Availability:  models.AvailabilityUnknown,
		ImageURL:      imageURL,
		IsRealProduct: false,
	}
}

// fallbackItem is the defensive floor for a panicked enrichment: same shape
// as a "no real product" item, built without touching the network.
func fallbackItem(item models.OutfitItem) models.EnrichedItem {
	return models.EnrichedItem{
		OutfitItem:    item,
		Price:         0,
		Currency:      "USD",
		PurchaseURL:   models.PurchaseURLUnavailable,
		Availability:  models.AvailabilityUnknown,
		ImageURL:      imageresolver.FallbackImage(item.Brand, item.Name),
		IsRealProduct: false,
	}
}
