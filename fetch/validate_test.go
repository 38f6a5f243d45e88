package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateImageURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/image.png":
			w.Header().Set("Content-Type", "image/png")
			w.WriteHeader(http.StatusOK)
		case "/page.html":
			w.Header().Set("Content-Type", "text/html")
			w.WriteHeader(http.StatusOK)
		case "/gone.jpg":
			w.WriteHeader(http.StatusNotFound)
		case "/get-only.jpg":
			// CDN that rejects HEAD outright.
			if r.Method == http.MethodHead {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			w.Header().Set("Content-Type", "image/jpeg")
			fmt.Fprint(w, "bytes")
		}
	}))
	defer srv.Close()

	ctx := context.Background()

	assert.True(t, ValidateImageURL(ctx, nil, srv.URL+"/image.png"))
	assert.False(t, ValidateImageURL(ctx, nil, srv.URL+"/page.html"), "non-image content type")
	assert.False(t, ValidateImageURL(ctx, nil, srv.URL+"/gone.jpg"))
	assert.True(t, ValidateImageURL(ctx, nil, srv.URL+"/get-only.jpg"), "falls back to GET when HEAD is rejected")
}

func TestValidateImageURLRejectsNonHTTP(t *testing.T) {
	ctx := context.Background()
	assert.False(t, ValidateImageURL(ctx, nil, ""))
	assert.False(t, ValidateImageURL(ctx, nil, "ftp://example.com/a.jpg"))
	assert.False(t, ValidateImageURL(ctx, nil, "/relative/path.jpg"))
}
