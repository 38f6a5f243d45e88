package hm

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/raushankrgupta/stylefinder/fetch"
	"github.com/raushankrgupta/stylefinder/models"
)

const defaultSearchURL = "https://www2.hm.com/en_us/search-results.html?q=%s"

const maxResults = 10

var priceRe = regexp.MustCompile(`[\d,]+(\.\d{1,2})?`)

// HMAdapter scrapes the H&M search listing. No API, no affiliate tracking:
// candidates come back as direct, zero-commission products.
type HMAdapter struct {
	SearchURL string
	Fetcher   *fetch.Fetcher
}

func New(fetcher *fetch.Fetcher) *HMAdapter {
	if fetcher == nil {
		fetcher = fetch.NewFetcher()
	}
	return &HMAdapter{
		SearchURL: defaultSearchURL,
		Fetcher:   fetcher,
	}
}

func (a *HMAdapter) Name() string      { return "H&M" }
func (a *HMAdapter) NetworkID() string { return models.NetworkDirect }

func (a *HMAdapter) Search(ctx context.Context, query, category string) []models.CandidateProduct {
	if query == "" {
		return nil
	}

	pageURL := fmt.Sprintf(a.SearchURL, url.QueryEscape(query))
	doc, err := a.Fetcher.Document(ctx, pageURL, func(doc *goquery.Document) bool {
		return doc.Find("li.product-item, article.hm-product-item, .product-item").Length() > 0 ||
			fetch.LooksRendered(doc)
	})
	if err != nil {
		fmt.Printf("[H&M] fetch failed: %v\n", err)
		return nil
	}

	var candidates []models.CandidateProduct
	doc.Find("li.product-item, article.hm-product-item").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if len(candidates) >= maxResults {
			return false
		}

		name := strings.TrimSpace(s.Find(".item-heading a, h3 a, .link").First().Text())
		if name == "" {
			return true
		}

		link := s.Find("a").First().AttrOr("href", "")
		if link != "" && !strings.HasPrefix(link, "http") {
			link = "https://www2.hm.com" + link
		}

		priceText := strings.TrimSpace(s.Find(".item-price, .price, span.price").First().Text())
		price := parsePrice(priceText)

		// Listing images are lazy-loaded; data-src holds the real URL
		img := s.Find("img").First().AttrOr("data-src", "")
		if img == "" {
			img = s.Find("img").First().AttrOr("src", "")
		}
		if img != "" && strings.HasPrefix(img, "//") {
			img = "https:" + img
		}

		var images []string
		if img != "" {
			images = append(images, img)
		}

		candidates = append(candidates, models.CandidateProduct{
			ID:           fmt.Sprintf("hm-%d-%s", i, slug(name)),
			Name:         name,
			Brand:        "H&M",
			Price:        price,
			Currency:     "USD",
			SourceName:   a.Name(),
			ProductURL:   link,
			PurchaseURL:  link,
			NetworkID:    a.NetworkID(),
			Availability: models.AvailabilityUnknown,
			Images:       images,
			Category:     category,
		})
		return true
	})

	return candidates
}

// parsePrice extracts a numeric amount from a price label like "$ 24.99"
func parsePrice(text string) float64 {
	match := priceRe.FindString(text)
	if match == "" {
		return 0
	}
	match = strings.ReplaceAll(match, ",", "")
	price, err := strconv.ParseFloat(match, 64)
	if err != nil || price < 0 {
		return 0
	}
	return price
}

func slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}
