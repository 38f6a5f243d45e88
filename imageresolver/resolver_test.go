package imageresolver

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newImageServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/good.jpg":
			w.Header().Set("Content-Type", "image/jpeg")
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, "jpegbytes")
		case "/missing.jpg":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.Header().Set("Content-Type", "text/html")
			w.WriteHeader(http.StatusOK)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestResolveExistingURLShortCircuits(t *testing.T) {
	srv := newImageServer(t)
	r := New(nil, nil)

	got := r.Resolve(context.Background(), Request{
		Name:              "white tee",
		CandidateImageURL: srv.URL + "/good.jpg",
	})

	assert.Equal(t, srv.URL+"/good.jpg", got)
}

func TestResolveScrapesProductPageMeta(t *testing.T) {
	imgSrv := newImageServer(t)

	pageSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w, `<html><head>
			<title>White Tee | Shop</title>
			<meta property="og:image" content="%s/good.jpg">
		</head><body><p>%s</p></body></html>`,
			imgSrv.URL, strings.Repeat("A plain white tee in heavy cotton. ", 20))
	}))
	defer pageSrv.Close()

	r := New(nil, nil)
	got := r.Resolve(context.Background(), Request{
		Name:              "white tee",
		CandidateImageURL: imgSrv.URL + "/missing.jpg", // fails validation
		ProductPageURL:    pageSrv.URL + "/product/white-tee",
	})

	assert.Equal(t, imgSrv.URL+"/good.jpg", got)
}

func TestResolveIsTotal(t *testing.T) {
	// No candidate URL, no page, unknown brand, no image source: the static
	// fallback must still produce something displayable.
	r := New(nil, nil)

	got := r.Resolve(context.Background(), Request{
		Name:  "mystery garment",
		Brand: "no-such-brand",
	})

	require.NotEmpty(t, got)
	assert.Equal(t, DefaultFashionImage, got)
}

func TestResolveSurvivesPanickingStrategy(t *testing.T) {
	r := New(nil, nil)
	r.strategies = []strategy{
		{"explodes", func(ctx context.Context, req Request) string { panic("boom") }},
		{"works", func(ctx context.Context, req Request) string { return "https://example.com/a.jpg" }},
	}

	got := r.Resolve(context.Background(), Request{Name: "anything"})
	assert.Equal(t, "https://example.com/a.jpg", got)
}

func TestFallbackImageBrandBeforeCategory(t *testing.T) {
	// A recognized brand wins over the item-name keyword.
	assert.Equal(t, brandFallbackImages["nike"], FallbackImage("Nike", "running sneaker"))
}

func TestFallbackImageCategoryKeywords(t *testing.T) {
	cases := map[string]string{
		"Air Force 1 Sneaker": "sneaker",
		"Chelsea Boot":        "boot",
		"Slim Jeans":          "jean",
		"Leather Belt":        "belt",
		"Oversized Hoodie":    "hoodie",
	}
	for name, keyword := range cases {
		got := FallbackImage("", name)
		require.NotEmpty(t, got, name)
		assert.NotEqual(t, DefaultFashionImage, got, "expected %q to match keyword %q", name, keyword)
	}

	// More specific keywords win: "sneaker" before "shoe".
	assert.NotEqual(t, FallbackImage("", "running shoe"), FallbackImage("", "running sneaker"))
}

func TestFallbackImageNeverEmpty(t *testing.T) {
	assert.Equal(t, DefaultFashionImage, FallbackImage("", ""))
	assert.NotEmpty(t, FallbackImage("Unknown Brand", "unrecognizable thing"))
}
