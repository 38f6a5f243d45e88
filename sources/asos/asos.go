package asos

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/raushankrgupta/stylefinder/models"
)

const defaultEndpoint = "https://www.asos.com/api/product/search/v2/"

// ASOSAdapter uses the storefront's own (undocumented) search API. There is
// no affiliate wrapping, so candidates carry networkID "direct" and zero
// commission; they still matter for coverage and for the alternates list.
type ASOSAdapter struct {
	Endpoint string
	Store    string
	Client   *http.Client
}

func New() *ASOSAdapter {
	return &ASOSAdapter{
		Endpoint: defaultEndpoint,
		Store:    "US",
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (a *ASOSAdapter) Name() string      { return "ASOS" }
func (a *ASOSAdapter) NetworkID() string { return models.NetworkDirect }

type searchResponse struct {
	Products []struct {
		ID        int64  `json:"id"`
		Name      string `json:"name"`
		BrandName string `json:"brandName"`
		URL       string `json:"url"`      // relative, e.g. "us/nike/..."
		ImageURL  string `json:"imageUrl"` // schemeless, e.g. "images.asos-media.com/..."
		Price     struct {
			Current struct {
				Value float64 `json:"value"`
			} `json:"current"`
			Currency string `json:"currency"`
		} `json:"price"`
		IsInStock bool `json:"isInStock"`
	} `json:"products"`
}

func (a *ASOSAdapter) Search(ctx context.Context, query, category string) []models.CandidateProduct {
	if query == "" {
		return nil
	}

	q := query
	if category != "" && !strings.Contains(strings.ToLower(q), category) {
		q = q + " " + category
	}

	params := url.Values{}
	params.Set("q", q)
	params.Set("store", a.Store)
	params.Set("limit", "20")
	params.Set("offset", "0")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.Endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil
	}
	// The API rejects requests without a browser user agent
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := a.Client.Do(req)
	if err != nil {
		fmt.Printf("[ASOS] request failed: %v\n", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("[ASOS] status code error: %d\n", resp.StatusCode)
		return nil
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		fmt.Printf("[ASOS] decode error: %v\n", err)
		return nil
	}

	candidates := make([]models.CandidateProduct, 0, len(payload.Products))
	for _, p := range payload.Products {
		if p.Name == "" {
			continue
		}

		productURL := p.URL
		if productURL != "" && !strings.HasPrefix(productURL, "http") {
			productURL = "https://www.asos.com/" + strings.TrimPrefix(productURL, "/")
		}

		var images []string
		if p.ImageURL != "" {
			img := p.ImageURL
			if !strings.HasPrefix(img, "http") {
				img = "https://" + img
			}
			images = append(images, img)
		}

		availability := models.AvailabilitySoldOut
		if p.IsInStock {
			availability = models.AvailabilityInStock
		}

		currency := p.Price.Currency
		if currency == "" {
			currency = "USD"
		}

		candidates = append(candidates, models.CandidateProduct{
			ID:           strconv.FormatInt(p.ID, 10),
			Name:         p.Name,
			Brand:        p.BrandName,
			Price:        p.Price.Current.Value,
			Currency:     currency,
			SourceName:   a.Name(),
			ProductURL:   productURL,
			PurchaseURL:  productURL,
			NetworkID:    a.NetworkID(),
			Availability: availability,
			Images:       images,
			Category:     category,
		})
	}
	return candidates
}
