package rakuten

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/raushankrgupta/stylefinder/config"
	"github.com/raushankrgupta/stylefinder/models"
)

const defaultEndpoint = "https://app.rakuten.co.jp/services/api/IchibaItem/Search/20220601"

// RakutenAdapter searches the Rakuten Ichiba affiliate API. Purchase URLs are
// affiliate-tracked and the commission rate comes from the item itself.
type RakutenAdapter struct {
	Endpoint    string
	AppID       string
	AffiliateID string
	Client      *http.Client
}

func New() *RakutenAdapter {
	return &RakutenAdapter{
		Endpoint:    defaultEndpoint,
		AppID:       config.RakutenAppID,
		AffiliateID: config.RakutenAffiliateID,
		Client:      &http.Client{Timeout: 10 * time.Second},
	}
}

func (a *RakutenAdapter) Name() string      { return "Rakuten" }
func (a *RakutenAdapter) NetworkID() string { return "rakuten" }

type searchResponse struct {
	Items []struct {
		Item struct {
			ItemCode        string  `json:"itemCode"`
			ItemName        string  `json:"itemName"`
			ItemCaption     string  `json:"itemCaption"`
			ItemPrice       int     `json:"itemPrice"`
			ItemURL         string  `json:"itemUrl"`
			AffiliateURL    string  `json:"affiliateUrl"`
			AffiliateRate   float64 `json:"affiliateRate"`
			Availability    int     `json:"availability"`
			ShopName        string  `json:"shopName"`
			MediumImageURLs []struct {
				ImageURL string `json:"imageUrl"`
			} `json:"mediumImageUrls"`
		} `json:"Item"`
	} `json:"Items"`
}

// Search queries the Ichiba API. A missing app ID or any API failure means
// this source contributes nothing.
func (a *RakutenAdapter) Search(ctx context.Context, query, category string) []models.CandidateProduct {
	if a.AppID == "" || query == "" {
		return nil
	}

	params := url.Values{}
	params.Set("applicationId", a.AppID)
	params.Set("keyword", query)
	params.Set("hits", "20")
	params.Set("format", "json")
	if a.AffiliateID != "" {
		params.Set("affiliateId", a.AffiliateID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.Endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil
	}

	resp, err := a.Client.Do(req)
	if err != nil {
		fmt.Printf("[Rakuten] request failed: %v\n", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("[Rakuten] status code error: %d\n", resp.StatusCode)
		return nil
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		fmt.Printf("[Rakuten] decode error: %v\n", err)
		return nil
	}

	candidates := make([]models.CandidateProduct, 0, len(payload.Items))
	for _, wrapper := range payload.Items {
		item := wrapper.Item
		if item.ItemName == "" {
			continue
		}

		purchaseURL := item.AffiliateURL
		if purchaseURL == "" {
			purchaseURL = item.ItemURL
		}

		availability := models.AvailabilitySoldOut
		if item.Availability == 1 {
			availability = models.AvailabilityInStock
		}

		var images []string
		for _, img := range item.MediumImageURLs {
			if img.ImageURL != "" {
				images = append(images, img.ImageURL)
			}
		}

		candidates = append(candidates, models.CandidateProduct{
			ID:          item.ItemCode,
			Name:        item.ItemName,
			Description: item.ItemCaption,
			Price:       float64(item.ItemPrice),
			Currency:    "JPY",
			SourceName:  a.Name() + " - " + item.ShopName,
			ProductURL:  item.ItemURL,
			PurchaseURL: purchaseURL,
			NetworkID:   a.NetworkID(),
			// affiliateRate is a percentage (e.g. 3.0)
			CommissionRate: item.AffiliateRate / 100,
			Availability:   availability,
			Images:         images,
			Category:       category,
		})
	}
	return candidates
}
