package fetch

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const browserUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Fetcher retrieves retailer pages as goquery documents. Plain HTTP is tried
// first; pages that render client-side fall through to a headless Chrome
// (chromedp) and finally a full Selenium browser.
type Fetcher struct {
	Client *http.Client
}

// NewFetcher creates a Fetcher with a transport tuned for scraping: HTTP/2 is
// disabled because several storefront CDNs fingerprint and reject Go's h2
// handshake.
func NewFetcher() *Fetcher {
	return &Fetcher{
		Client: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				ForceAttemptHTTP2:     false,
				TLSNextProto:          make(map[string]func(string, *tls.Conn) http.RoundTripper),
				MaxIdleConns:          100,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
	}
}

// Document fetches the URL, trying each strategy until the validator accepts
// the result.
func (f *Fetcher) Document(ctx context.Context, url string, validator func(*goquery.Document) bool) (*goquery.Document, error) {
	doc, err := f.DocumentHTTP(ctx, url)
	if err == nil {
		if validator(doc) {
			fmt.Printf("[Fetcher] HTTP Success: %s\n", url)
			return doc, nil
		}
		fmt.Printf("[Fetcher] HTTP yielded invalid content (validator failed), trying fallbacks...\n")
	} else {
		fmt.Printf("[Fetcher] HTTP Failed: %v\n", err)
	}

	fmt.Printf("[Fetcher] Trying ChromeDP: %s\n", url)
	doc, err = f.DocumentChromeDP(ctx, url)
	if err == nil && validator(doc) {
		fmt.Printf("[Fetcher] ChromeDP Success\n")
		return doc, nil
	}
	if err != nil {
		fmt.Printf("[Fetcher] ChromeDP Failed: %v\n", err)
	}

	fmt.Printf("[Fetcher] Trying Selenium: %s\n", url)
	doc, err = f.DocumentSelenium(url)
	if err == nil && validator(doc) {
		fmt.Printf("[Fetcher] Selenium Success\n")
		return doc, nil
	}
	if err != nil {
		fmt.Printf("[Fetcher] Selenium Failed: %v\n", err)
	}

	return nil, fmt.Errorf("all fetch strategies failed for %s", url)
}

// LooksRendered is a generic validator: the page has a title and a body with
// real content, and is not a bot-check interstitial.
func LooksRendered(doc *goquery.Document) bool {
	title := strings.ToLower(strings.TrimSpace(doc.Find("title").Text()))
	if strings.Contains(title, "robot check") ||
		strings.Contains(title, "captcha") ||
		strings.Contains(title, "access denied") {
		return false
	}
	return len(strings.TrimSpace(doc.Find("body").Text())) > 200
}

// DocumentHTTP fetches the URL with the plain HTTP client and browser-like
// headers.
func (f *Fetcher) DocumentHTTP(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8,application/signed-exchange;v=b3;q=0.7")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
	req.Header.Set("Sec-Ch-Ua", `"Not_A Brand";v="8", "Chromium";v="120", "Google Chrome";v="120"`)
	req.Header.Set("Sec-Ch-Ua-Mobile", "?0")
	req.Header.Set("Sec-Ch-Ua-Platform", `"macOS"`)
	req.Header.Set("Sec-Fetch-Dest", "document")
	req.Header.Set("Sec-Fetch-Mode", "navigate")
	req.Header.Set("Sec-Fetch-Site", "cross-site")
	req.Header.Set("Sec-Fetch-User", "?1")

	res, err := f.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status code error: %d %s", res.StatusCode, res.Status)
	}

	return goquery.NewDocumentFromReader(res.Body)
}
