package hm

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raushankrgupta/stylefinder/fetch"
	"github.com/raushankrgupta/stylefinder/models"
)

const listingPage = `<html><head><title>Search results | H&amp;M</title></head><body>
<ul>
	<li class="product-item">
		<div class="item-heading"><a href="/en_us/productpage.101.html">Regular Fit Tee</a></div>
		<span class="item-price">$ 9.99</span>
		<img data-src="//lp2.hm.com/imgs/101.jpg" src="/placeholder.gif">
	</li>
	<li class="product-item">
		<div class="item-heading"><a href="https://www2.hm.com/en_us/productpage.102.html">Linen Shirt</a></div>
		<span class="item-price">$24.99</span>
		<img src="https://lp2.hm.com/imgs/102.jpg">
	</li>
	<li class="product-item">
		<span class="item-price">$5.00</span>
	</li>
</ul>
</body></html>`

func TestSearchParsesListing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "linen shirt", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, listingPage)
	}))
	defer srv.Close()

	a := New(fetch.NewFetcher())
	a.SearchURL = srv.URL + "/search?q=%s"

	out := a.Search(context.Background(), "linen shirt", "tops")

	require.Len(t, out, 2, "the nameless item is skipped")

	first := out[0]
	assert.Equal(t, "Regular Fit Tee", first.Name)
	assert.Equal(t, "H&M", first.Brand)
	assert.Equal(t, 9.99, first.Price)
	assert.Equal(t, "https://www2.hm.com/en_us/productpage.101.html", first.ProductURL)
	assert.Equal(t, first.ProductURL, first.PurchaseURL)
	assert.Equal(t, models.NetworkDirect, first.NetworkID)
	assert.Zero(t, first.CommissionRate)
	require.Len(t, first.Images, 1)
	assert.Equal(t, "https://lp2.hm.com/imgs/101.jpg", first.Images[0])

	second := out[1]
	assert.Equal(t, 24.99, second.Price)
	assert.Equal(t, "https://lp2.hm.com/imgs/102.jpg", second.Images[0])
}

func TestSearchEmptyQuery(t *testing.T) {
	assert.Nil(t, New(nil).Search(context.Background(), "", ""))
}

func TestParsePrice(t *testing.T) {
	assert.Equal(t, 9.99, parsePrice("$ 9.99"))
	assert.Equal(t, 1299.0, parsePrice("$1,299"))
	assert.Equal(t, 0.0, parsePrice("price on request"))
	assert.Equal(t, 0.0, parsePrice(""))
}
