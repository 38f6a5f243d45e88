package imageresolver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// brandLookupFunc queries one brand's own search endpoint and returns the
// first result's image URL, or "" on any failure.
type brandLookupFunc func(ctx context.Context, client *http.Client, itemName string) string

// brandAPIs holds the small set of brands whose storefront APIs are stable
// enough to call directly.
var brandAPIs = map[string]brandLookupFunc{
	"asos":   asosImageLookup,
	"uniqlo": uniqloImageLookup,
	"h&m":    hmImageLookup,
}

func brandAPIFor(brand string) (brandLookupFunc, bool) {
	fn, ok := brandAPIs[strings.ToLower(strings.TrimSpace(brand))]
	return fn, ok
}

func asosImageLookup(ctx context.Context, client *http.Client, itemName string) string {
	endpoint := "https://www.asos.com/api/product/search/v2/?store=US&limit=1&q=" + url.QueryEscape(itemName)
	var payload struct {
		Products []struct {
			ImageURL string `json:"imageUrl"`
		} `json:"products"`
	}
	if !fetchJSON(ctx, client, endpoint, &payload) || len(payload.Products) == 0 {
		return ""
	}
	img := payload.Products[0].ImageURL
	if img != "" && !strings.HasPrefix(img, "http") {
		img = "https://" + img
	}
	return img
}

func uniqloImageLookup(ctx context.Context, client *http.Client, itemName string) string {
	endpoint := "https://www.uniqlo.com/us/api/commerce/v3/en/products?limit=1&q=" + url.QueryEscape(itemName)
	var payload struct {
		Result struct {
			Items []struct {
				Images struct {
					Main map[string]struct {
						Image string `json:"image"`
					} `json:"main"`
				} `json:"images"`
			} `json:"items"`
		} `json:"result"`
	}
	if !fetchJSON(ctx, client, endpoint, &payload) || len(payload.Result.Items) == 0 {
		return ""
	}
	for _, m := range payload.Result.Items[0].Images.Main {
		if m.Image != "" {
			return m.Image
		}
	}
	return ""
}

func hmImageLookup(ctx context.Context, client *http.Client, itemName string) string {
	endpoint := "https://www2.hm.com/en_us/search-results/_jcr_content/search.display.json?q=" + url.QueryEscape(itemName)
	var payload struct {
		Products []struct {
			Image string `json:"image"`
		} `json:"products"`
	}
	if !fetchJSON(ctx, client, endpoint, &payload) || len(payload.Products) == 0 {
		return ""
	}
	img := payload.Products[0].Image
	if strings.HasPrefix(img, "//") {
		img = "https:" + img
	}
	return img
}

func fetchJSON(ctx context.Context, client *http.Client, endpoint string, out interface{}) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("[ImageResolver] brand lookup failed: %v\n", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false
	}
	return json.NewDecoder(resp.Body).Decode(out) == nil
}
