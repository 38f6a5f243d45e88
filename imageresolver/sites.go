package imageresolver

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// siteStrategy is the per-retailer extraction capability: how to pull the
// primary image off a product page, how to build a search URL, and how to
// read a search listing. Adding a retailer means adding an entry here, never
// branching in shared code.
type siteStrategy struct {
	extractProductImages func(doc *goquery.Document) []string
	searchURL            func(query string) string
	extractListingImages func(doc *goquery.Document) []string
}

var siteStrategies = map[string]siteStrategy{
	"zara.com": {
		extractProductImages: func(doc *goquery.Document) []string {
			return collectAttrs(doc, "picture.media-image img", "src", "data-src")
		},
		searchURL: func(query string) string {
			return "https://www.zara.com/us/en/search?searchTerm=" + url.QueryEscape(query)
		},
		extractListingImages: func(doc *goquery.Document) []string {
			return collectAttrs(doc, "li.product-grid-product img", "src", "data-src")
		},
	},
	"hm.com": {
		extractProductImages: func(doc *goquery.Document) []string {
			return collectAttrs(doc, ".product-detail-main-image-container img", "src", "data-src")
		},
		searchURL: func(query string) string {
			return "https://www2.hm.com/en_us/search-results.html?q=" + url.QueryEscape(query)
		},
		extractListingImages: func(doc *goquery.Document) []string {
			return collectAttrs(doc, "li.product-item img, article.hm-product-item img", "data-src", "src")
		},
	},
	"asos.com": {
		extractProductImages: func(doc *goquery.Document) []string {
			return collectAttrs(doc, ".gallery-image img, #product-gallery img", "src")
		},
		searchURL: func(query string) string {
			return "https://www.asos.com/us/search/?q=" + url.QueryEscape(query)
		},
		extractListingImages: func(doc *goquery.Document) []string {
			return collectAttrs(doc, "article img", "src")
		},
	},
	"nordstrom.com": {
		extractProductImages: func(doc *goquery.Document) []string {
			return collectAttrs(doc, "div[data-test-id='gallery'] img", "src")
		},
		searchURL: func(query string) string {
			return "https://www.nordstrom.com/sr?keyword=" + url.QueryEscape(query)
		},
		extractListingImages: func(doc *goquery.Document) []string {
			return collectAttrs(doc, "article.product-module img", "src")
		},
	},
	"uniqlo.com": {
		extractProductImages: func(doc *goquery.Document) []string {
			return collectAttrs(doc, ".product-main-image img", "src")
		},
		searchURL: func(query string) string {
			return "https://www.uniqlo.com/us/en/search?q=" + url.QueryEscape(query)
		},
		extractListingImages: func(doc *goquery.Document) []string {
			return collectAttrs(doc, ".product-tile img", "src", "data-src")
		},
	},
}

// brandStorefronts maps a brand keyword to the retailer entry worth scraping
// when no website hint is available.
var brandStorefronts = map[string]string{
	"zara":   "zara.com",
	"h&m":    "hm.com",
	"hm":     "hm.com",
	"asos":   "asos.com",
	"uniqlo": "uniqlo.com",
}

// knownRetailerDomains marks domains whose image-search hits are likely to be
// clean product shots rather than editorial photos.
var knownRetailerDomains = []string{
	"zara.com", "hm.com", "asos.com", "nordstrom.com", "uniqlo.com",
	"nike.com", "adidas.com", "macys.com", "net-a-porter.com", "ssense.com",
	"farfetch.com", "zalando.", "shopstyle.com",
}

func siteFor(host string) (siteStrategy, bool) {
	host = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(host)), "www.")
	if host == "" {
		return siteStrategy{}, false
	}
	for domain, s := range siteStrategies {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return s, true
		}
	}
	return siteStrategy{}, false
}

func siteForBrand(brand string) (siteStrategy, bool) {
	key := strings.ToLower(strings.TrimSpace(brand))
	if domain, ok := brandStorefronts[key]; ok {
		return siteFor(domain)
	}
	return siteStrategy{}, false
}

func isKnownRetailerDomain(domain string) bool {
	domain = strings.ToLower(domain)
	for _, d := range knownRetailerDomains {
		if strings.Contains(domain, d) {
			return true
		}
	}
	return false
}

// genericProductImages covers retailers without a dedicated entry: open graph
// and twitter meta images, the old link rel shortcut, structured-data Product
// images, then any conspicuously product-looking <img>.
func genericProductImages(doc *goquery.Document) []string {
	var out []string
	add := func(u string) {
		u = strings.TrimSpace(u)
		if u != "" {
			out = append(out, u)
		}
	}

	add(doc.Find("meta[property='og:image']").AttrOr("content", ""))
	add(doc.Find("meta[name='twitter:image']").AttrOr("content", ""))
	add(doc.Find("link[rel='image_src']").AttrOr("href", ""))

	doc.Find("script[type='application/ld+json']").Each(func(i int, s *goquery.Selection) {
		for _, u := range jsonLDImages(s.Text()) {
			add(u)
		}
	})

	doc.Find("img[itemprop='image'], img[id*='product'], img[class*='product']").Each(func(i int, s *goquery.Selection) {
		add(s.AttrOr("src", ""))
	})

	return out
}

// jsonLDImages pulls the "image" field out of a JSON-LD block. The field is
// a string or an array of strings depending on the retailer.
func jsonLDImages(raw string) []string {
	var payload struct {
		Image json.RawMessage `json:"image"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil || len(payload.Image) == 0 {
		return nil
	}

	var single string
	if err := json.Unmarshal(payload.Image, &single); err == nil {
		return []string{single}
	}
	var many []string
	if err := json.Unmarshal(payload.Image, &many); err == nil {
		return many
	}
	return nil
}

// collectAttrs pulls the first non-empty of the given attributes from every
// element matching the selector.
func collectAttrs(doc *goquery.Document, selector string, attrs ...string) []string {
	var out []string
	doc.Find(selector).Each(func(i int, s *goquery.Selection) {
		for _, attr := range attrs {
			if v := strings.TrimSpace(s.AttrOr(attr, "")); v != "" {
				out = append(out, v)
				return
			}
		}
	})
	return out
}
