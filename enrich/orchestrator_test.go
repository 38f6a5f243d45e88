package enrich

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raushankrgupta/stylefinder/imageresolver"
	"github.com/raushankrgupta/stylefinder/models"
)

// stubSearcher returns canned candidates keyed by a substring of the query.
type stubSearcher struct {
	byQuery map[string][]models.CandidateProduct
}

func (s *stubSearcher) Aggregate(ctx context.Context, query, category string) []models.CandidateProduct {
	for key, products := range s.byQuery {
		if strings.Contains(strings.ToLower(query), key) {
			return products
		}
	}
	return nil
}

type stubResolver struct {
	url    string
	panics bool
}

func (s *stubResolver) Resolve(ctx context.Context, req imageresolver.Request) string {
	if s.panics {
		panic("resolver blew up")
	}
	if s.url != "" {
		return s.url
	}
	return "https://img.example.com/resolved.jpg"
}

func testOutfit() *models.GeneratedOutfit {
	return &models.GeneratedOutfit{
		MainDescription: "Relaxed weekend look",
		StyleKeywords:   []string{"casual", "weekend"},
		Tops: []models.OutfitItem{
			{Name: "white tee", Brand: "Uniqlo", Category: models.CategoryTops},
		},
		Bottoms: []models.OutfitItem{
			{Name: "501 jeans", Brand: "Levi's", Category: models.CategoryBottoms},
		},
		Shoes: []models.OutfitItem{
			{Name: "air force 1", Brand: "Nike", Category: models.CategoryShoes},
		},
	}
}

func TestEnrichMergesBestCandidate(t *testing.T) {
	searcher := &stubSearcher{byQuery: map[string][]models.CandidateProduct{
		"jeans": {
			{
				ID: "levis-501", Name: "501 Original Fit Jeans", Brand: "Levi's",
				Price: 69.50, Currency: "USD", SourceName: "shopstyle",
				ProductURL: "https://shop.example.com/501", PurchaseURL: "https://go.example.com/501",
				NetworkID: "shopstyle", CommissionRate: 0.04,
				Availability: models.AvailabilityInStock,
				Images:       []string{"https://img.example.com/501.jpg"},
			},
		},
	}}
	resolver := &stubResolver{url: "https://img.example.com/final.jpg"}

	doc := New(searcher, resolver).Enrich(context.Background(), testOutfit())

	require.Len(t, doc.Bottoms, 1)
	item := doc.Bottoms[0]
	assert.True(t, item.IsRealProduct)
	assert.Equal(t, "levis-501", item.CandidateID)
	assert.Equal(t, 69.50, item.Price)
	assert.Equal(t, "https://go.example.com/501", item.PurchaseURL)
	assert.Equal(t, models.AvailabilityInStock, item.Availability)
	assert.Equal(t, "https://img.example.com/final.jpg", item.ImageURL)
	// Generic identity survives enrichment.
	assert.Equal(t, "501 jeans", item.Name)
	assert.Equal(t, models.CategoryBottoms, item.Category)
}

func TestEnrichPicksHighestRankedCandidate(t *testing.T) {
	searcher := &stubSearcher{byQuery: map[string][]models.CandidateProduct{
		"tee": {
			{ID: "low", Brand: "Uniqlo", Name: "Supima Tee", Price: 14.90, CommissionRate: 0.02},
			{ID: "high", Brand: "Uniqlo", Name: "Airism Tee", Price: 19.90, CommissionRate: 0.08},
		},
	}}

	doc := New(searcher, &stubResolver{}).Enrich(context.Background(), testOutfit())

	require.Len(t, doc.Tops, 1)
	assert.Equal(t, "high", doc.Tops[0].CandidateID)
}

func TestEnrichWithoutCandidatesKeepsGenericItem(t *testing.T) {
	doc := New(&stubSearcher{}, &stubResolver{}).Enrich(context.Background(), testOutfit())

	require.Len(t, doc.Shoes, 1)
	item := doc.Shoes[0]
	assert.False(t, item.IsRealProduct)
	assert.Zero(t, item.Price)
	assert.Equal(t, models.PurchaseURLUnavailable, item.PurchaseURL)
	assert.Equal(t, models.AvailabilityUnknown, item.Availability)
	assert.NotEmpty(t, item.ImageURL)
}

func TestEnrichTotals(t *testing.T) {
	searcher := &stubSearcher{byQuery: map[string][]models.CandidateProduct{
		"jeans": {{ID: "j", Brand: "Levi's", Name: "501", Price: 69.50}},
		"tee":   {{ID: "t", Brand: "Uniqlo", Name: "Tee", Price: 14.99}},
	}}

	doc := New(searcher, &stubResolver{}).Enrich(context.Background(), testOutfit())

	assert.Equal(t, 2, doc.RealProductCount)
	assert.Equal(t, 84.49, doc.TotalPrice)
	assert.Len(t, doc.AllItems(), 3)
}

func TestEnrichPreservesStructure(t *testing.T) {
	doc := New(&stubSearcher{}, &stubResolver{}).Enrich(context.Background(), testOutfit())

	assert.Equal(t, "Relaxed weekend look", doc.MainDescription)
	assert.Equal(t, []string{"casual", "weekend"}, doc.StyleKeywords)
	assert.Len(t, doc.Tops, 1)
	assert.Len(t, doc.Bottoms, 1)
	assert.Empty(t, doc.Accessories)
	assert.Len(t, doc.Shoes, 1)
}

func TestEnrichSurvivesPanickingResolver(t *testing.T) {
	doc := New(&stubSearcher{}, &stubResolver{panics: true}).Enrich(context.Background(), testOutfit())

	items := doc.AllItems()
	require.Len(t, items, 3)
	for _, item := range items {
		assert.False(t, item.IsRealProduct)
		assert.Equal(t, models.PurchaseURLUnavailable, item.PurchaseURL)
		assert.NotEmpty(t, item.ImageURL, "degraded item %q still needs an image", item.Name)
	}
	assert.Zero(t, doc.RealProductCount)
}

func TestEnrichNilOutfit(t *testing.T) {
	doc := New(&stubSearcher{}, &stubResolver{}).Enrich(context.Background(), nil)

	require.NotNil(t, doc)
	assert.Empty(t, doc.AllItems())
	assert.Zero(t, doc.TotalPrice)
	assert.Zero(t, doc.RealProductCount)
}
