package shopstyle

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/raushankrgupta/stylefinder/config"
	"github.com/raushankrgupta/stylefinder/models"
)

const defaultEndpoint = "https://api.shopstyle.com/api/v2/products"

// ShopStyle pays a flat network commission rather than per-item rates.
const networkCommissionRate = 0.04

// ShopStyleAdapter searches the ShopStyle Collective catalog, a fashion-only
// affiliate aggregator. Click URLs are already affiliate-tracked.
type ShopStyleAdapter struct {
	Endpoint string
	PID      string
	Client   *http.Client
}

func New() *ShopStyleAdapter {
	return &ShopStyleAdapter{
		Endpoint: defaultEndpoint,
		PID:      config.ShopStylePID,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (a *ShopStyleAdapter) Name() string      { return "ShopStyle" }
func (a *ShopStyleAdapter) NetworkID() string { return "shopstyle" }

type searchResponse struct {
	Products []struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Brand struct {
			Name string `json:"name"`
		} `json:"brand"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		Currency    string  `json:"currency"`
		ClickURL    string  `json:"clickUrl"`
		InStock     bool    `json:"inStock"`
		Image       struct {
			Sizes struct {
				Best struct {
					URL string `json:"url"`
				} `json:"Best"`
				Original struct {
					URL string `json:"url"`
				} `json:"Original"`
			} `json:"sizes"`
		} `json:"image"`
	} `json:"products"`
}

func (a *ShopStyleAdapter) Search(ctx context.Context, query, category string) []models.CandidateProduct {
	if a.PID == "" || query == "" {
		return nil
	}

	params := url.Values{}
	params.Set("pid", a.PID)
	params.Set("fts", query)
	params.Set("limit", "20")
	if category != "" {
		params.Set("cat", category)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.Endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil
	}

	resp, err := a.Client.Do(req)
	if err != nil {
		fmt.Printf("[ShopStyle] request failed: %v\n", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("[ShopStyle] status code error: %d\n", resp.StatusCode)
		return nil
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		fmt.Printf("[ShopStyle] decode error: %v\n", err)
		return nil
	}

	candidates := make([]models.CandidateProduct, 0, len(payload.Products))
	for _, p := range payload.Products {
		if p.Name == "" || p.Price < 0 {
			continue
		}

		currency := p.Currency
		if currency == "" {
			currency = "USD"
		}

		availability := models.AvailabilitySoldOut
		if p.InStock {
			availability = models.AvailabilityInStock
		}

		var images []string
		if u := p.Image.Sizes.Best.URL; u != "" {
			images = append(images, u)
		} else if u := p.Image.Sizes.Original.URL; u != "" {
			images = append(images, u)
		}

		candidates = append(candidates, models.CandidateProduct{
			ID:             strconv.FormatInt(p.ID, 10),
			Name:           p.Name,
			Brand:          p.Brand.Name,
			Description:    p.Description,
			Price:          p.Price,
			Currency:       currency,
			SourceName:     a.Name(),
			ProductURL:     p.ClickURL,
			PurchaseURL:    p.ClickURL,
			NetworkID:      a.NetworkID(),
			CommissionRate: networkCommissionRate,
			Availability:   availability,
			Images:         images,
			Category:       category,
		})
	}
	return candidates
}
