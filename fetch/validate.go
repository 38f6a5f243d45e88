package fetch

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// ValidateImageURL confirms that a URL is reachable and actually serves an
// image, without downloading the body. HEAD is tried first; some image CDNs
// reject HEAD, so a GET (with the body discarded immediately) is the fallback.
func ValidateImageURL(ctx context.Context, client *http.Client, url string) bool {
	if url == "" || !strings.HasPrefix(url, "http") {
		return false
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if ok, decided := checkImage(ctx, client, http.MethodHead, url); decided {
		return ok
	}
	ok, _ := checkImage(ctx, client, http.MethodGet, url)
	return ok
}

// checkImage returns (valid, decided). decided is false when the server
// rejected the method itself and the caller should retry with GET.
func checkImage(ctx context.Context, client *http.Client, method, url string) (bool, bool) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return false, true
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "image/avif,image/webp,image/apng,image/*,*/*;q=0.8")

	resp, err := client.Do(req)
	if err != nil {
		return false, method != http.MethodHead
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusMethodNotAllowed || resp.StatusCode == http.StatusNotImplemented {
		return false, method != http.MethodHead
	}
	if resp.StatusCode != http.StatusOK {
		return false, true
	}

	contentType := resp.Header.Get("Content-Type")
	return strings.HasPrefix(contentType, "image/"), true
}
