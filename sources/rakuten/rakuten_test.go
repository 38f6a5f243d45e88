package rakuten

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raushankrgupta/stylefinder/models"
)

const sampleResponse = `{
	"Items": [
		{"Item": {
			"itemCode": "shop:10001",
			"itemName": "Denim Jacket",
			"itemCaption": "Classic denim jacket",
			"itemPrice": 5980,
			"itemUrl": "https://item.rakuten.co.jp/shop/10001/",
			"affiliateUrl": "https://hb.afl.rakuten.co.jp/abc123",
			"affiliateRate": 3.0,
			"availability": 1,
			"shopName": "Denim Shop",
			"mediumImageUrls": [{"imageUrl": "https://thumbnail.image.rakuten.co.jp/a.jpg"}]
		}},
		{"Item": {
			"itemCode": "shop:10002",
			"itemName": "Sold Out Jacket",
			"itemPrice": 4000,
			"itemUrl": "https://item.rakuten.co.jp/shop/10002/",
			"affiliateRate": 2.0,
			"availability": 0,
			"shopName": "Denim Shop"
		}}
	]
}`

func newAdapter(endpoint string) *RakutenAdapter {
	return &RakutenAdapter{
		Endpoint:    endpoint,
		AppID:       "test-app-id",
		AffiliateID: "test-affiliate",
		Client:      &http.Client{Timeout: 5 * time.Second},
	}
}

func TestSearchParsesItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-app-id", r.URL.Query().Get("applicationId"))
		assert.Equal(t, "denim jacket", r.URL.Query().Get("keyword"))
		assert.Equal(t, "test-affiliate", r.URL.Query().Get("affiliateId"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, sampleResponse)
	}))
	defer srv.Close()

	out := newAdapter(srv.URL).Search(context.Background(), "denim jacket", "tops")

	require.Len(t, out, 2)

	first := out[0]
	assert.Equal(t, "shop:10001", first.ID)
	assert.Equal(t, "Denim Jacket", first.Name)
	assert.Equal(t, 5980.0, first.Price)
	assert.Equal(t, "JPY", first.Currency)
	assert.Equal(t, "https://hb.afl.rakuten.co.jp/abc123", first.PurchaseURL)
	assert.Equal(t, "rakuten", first.NetworkID)
	assert.InDelta(t, 0.03, first.CommissionRate, 1e-9)
	assert.Equal(t, models.AvailabilityInStock, first.Availability)
	assert.Equal(t, "tops", first.Category)
	require.Len(t, first.Images, 1)

	second := out[1]
	// No affiliate URL falls back to the item URL.
	assert.Equal(t, "https://item.rakuten.co.jp/shop/10002/", second.PurchaseURL)
	assert.Equal(t, models.AvailabilitySoldOut, second.Availability)
}

func TestSearchWithoutCredentials(t *testing.T) {
	a := newAdapter("http://unused.invalid")
	a.AppID = ""
	assert.Nil(t, a.Search(context.Background(), "denim jacket", ""))
}

func TestSearchEmptyQuery(t *testing.T) {
	assert.Nil(t, newAdapter("http://unused.invalid").Search(context.Background(), "", ""))
}

func TestSearchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	assert.Nil(t, newAdapter(srv.URL).Search(context.Background(), "denim", ""))
}

func TestSearchMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not json at all")
	}))
	defer srv.Close()

	assert.Nil(t, newAdapter(srv.URL).Search(context.Background(), "denim", ""))
}
