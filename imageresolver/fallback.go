package imageresolver

import "strings"

// DefaultFashionImage is the final closure of the cascade: when nothing about
// the item is recognized, this is what renders.
const DefaultFashionImage = "https://images.unsplash.com/photo-1490481651871-ab68de25d43d?w=600&q=80"

// brandFallbackImages maps recognized brand keywords to a curated image.
var brandFallbackImages = map[string]string{
	"nike":    "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=600&q=80",
	"adidas":  "https://images.unsplash.com/photo-1518002171953-a080ee817e1f?w=600&q=80",
	"levi's":  "https://images.unsplash.com/photo-1541099649105-f69ad21f3246?w=600&q=80",
	"levis":   "https://images.unsplash.com/photo-1541099649105-f69ad21f3246?w=600&q=80",
	"zara":    "https://images.unsplash.com/photo-1485968579580-b6d095142e6e?w=600&q=80",
	"h&m":     "https://images.unsplash.com/photo-1489987707025-afc232f7ea0f?w=600&q=80",
	"uniqlo":  "https://images.unsplash.com/photo-1434389677669-e08b4cac3105?w=600&q=80",
	"gucci":   "https://images.unsplash.com/photo-1584917865442-de89df76afd3?w=600&q=80",
	"ray-ban": "https://images.unsplash.com/photo-1511499767150-a48a237f0083?w=600&q=80",
}

// categoryFallback pairs an item-name keyword with a curated image. Order
// matters: more specific keywords come first ("sneaker" before "shoe").
type categoryFallback struct {
	keyword string
	url     string
}

var categoryFallbackImages = []categoryFallback{
	{"sneaker", "https://images.unsplash.com/photo-1549298916-b41d501d3772?w=600&q=80"},
	{"boot", "https://images.unsplash.com/photo-1520639888713-7851133b1ed0?w=600&q=80"},
	{"heel", "https://images.unsplash.com/photo-1543163521-1bf539c55dd2?w=600&q=80"},
	{"loafer", "https://images.unsplash.com/photo-1582897085656-c636d006a246?w=600&q=80"},
	{"shoe", "https://images.unsplash.com/photo-1560343090-f0409e92791a?w=600&q=80"},
	{"hoodie", "https://images.unsplash.com/photo-1556821840-3a63f95609a7?w=600&q=80"},
	{"sweater", "https://images.unsplash.com/photo-1576871337622-98d48d1cf531?w=600&q=80"},
	{"jacket", "https://images.unsplash.com/photo-1551028719-00167b16eac5?w=600&q=80"},
	{"coat", "https://images.unsplash.com/photo-1539533018447-63fcce2678e3?w=600&q=80"},
	{"blazer", "https://images.unsplash.com/photo-1507679799987-c73779587ccf?w=600&q=80"},
	{"dress", "https://images.unsplash.com/photo-1595777457583-95e059d581b8?w=600&q=80"},
	{"skirt", "https://images.unsplash.com/photo-1583496661160-fb5886a0aaaa?w=600&q=80"},
	{"jean", "https://images.unsplash.com/photo-1541099649105-f69ad21f3246?w=600&q=80"},
	{"trouser", "https://images.unsplash.com/photo-1473966968600-fa801b869a1a?w=600&q=80"},
	{"pant", "https://images.unsplash.com/photo-1473966968600-fa801b869a1a?w=600&q=80"},
	{"short", "https://images.unsplash.com/photo-1591195853828-11db59a44f6b?w=600&q=80"},
	{"shirt", "https://images.unsplash.com/photo-1596755094514-f87e34085b2c?w=600&q=80"},
	{"tee", "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=600&q=80"},
	{"t-shirt", "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=600&q=80"},
	{"bag", "https://images.unsplash.com/photo-1548036328-c9fa89d128fa?w=600&q=80"},
	{"backpack", "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=600&q=80"},
	{"hat", "https://images.unsplash.com/photo-1521369909029-2afed882baee?w=600&q=80"},
	{"cap", "https://images.unsplash.com/photo-1588850561407-ed78c282e89b?w=600&q=80"},
	{"watch", "https://images.unsplash.com/photo-1524592094714-0f0654e20314?w=600&q=80"},
	{"belt", "https://images.unsplash.com/photo-1553704571-c32d20af8a20?w=600&q=80"},
	{"scarf", "https://images.unsplash.com/photo-1457545195570-67f207084966?w=600&q=80"},
	{"sunglass", "https://images.unsplash.com/photo-1511499767150-a48a237f0083?w=600&q=80"},
	{"glove", "https://images.unsplash.com/photo-1545194445-dddb8f4487c6?w=600&q=80"},
	{"sock", "https://images.unsplash.com/photo-1586350977771-b3b0abd50c82?w=600&q=80"},
}

// FallbackImage is the unconditional last strategy of the cascade. It maps a
// recognized brand keyword, then an item-name keyword, to a curated image,
// and otherwise returns the global default. It never returns "".
func FallbackImage(brand, name string) string {
	if b := strings.ToLower(strings.TrimSpace(brand)); b != "" {
		if img, ok := brandFallbackImages[b]; ok {
			return img
		}
	}

	lowerName := strings.ToLower(name)
	for _, cf := range categoryFallbackImages {
		if strings.Contains(lowerName, cf.keyword) {
			return cf.url
		}
	}

	return DefaultFashionImage
}
