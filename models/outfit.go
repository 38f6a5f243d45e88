package models

// Outfit slot categories. Every generated outfit groups its items under
// exactly these four.
const (
	CategoryTops        = "tops"
	CategoryBottoms     = "bottoms"
	CategoryAccessories = "accessories"
	CategoryShoes       = "shoes"
)

// Categories returns the slot categories in display order.
func Categories() []string {
	return []string{CategoryTops, CategoryBottoms, CategoryAccessories, CategoryShoes}
}

// PurchaseURLUnavailable is the sentinel purchase link for items that could
// not be matched to a real product.
const PurchaseURLUnavailable = "#unavailable"

// OutfitItem is one generic AI-proposed garment or accessory before
// enrichment. It is never mutated; enrichment produces an EnrichedItem.
type OutfitItem struct {
	Name        string   `json:"name" bson:"name"`
	Description string   `json:"description" bson:"description"`
	Brand       string   `json:"brand" bson:"brand"`
	Category    string   `json:"category" bson:"category"`
	StyleTags   []string `json:"style_tags,omitempty" bson:"style_tags,omitempty"`
}

// GeneratedOutfit is the raw output of the AI generation step.
type GeneratedOutfit struct {
	MainDescription string       `json:"main_description"`
	StyleKeywords   []string     `json:"style_keywords"`
	Tops            []OutfitItem `json:"tops"`
	Bottoms         []OutfitItem `json:"bottoms"`
	Accessories     []OutfitItem `json:"accessories"`
	Shoes           []OutfitItem `json:"shoes"`
}

// ItemsFor returns the slot items for a category. Unknown or empty categories
// yield nil, which callers treat as zero items.
func (o *GeneratedOutfit) ItemsFor(category string) []OutfitItem {
	switch category {
	case CategoryTops:
		return o.Tops
	case CategoryBottoms:
		return o.Bottoms
	case CategoryAccessories:
		return o.Accessories
	case CategoryShoes:
		return o.Shoes
	}
	return nil
}

// EnrichedItem is an OutfitItem with resolved commerce and image data.
// When IsRealProduct is false, Price is 0, PurchaseURL is the unavailable
// sentinel and ImageURL is still guaranteed non-empty.
type EnrichedItem struct {
	OutfitItem     `bson:",inline"`
	Price          float64 `json:"price" bson:"price"`
	Currency       string  `json:"currency" bson:"currency"`
	SourceName     string  `json:"source_name,omitempty" bson:"source_name,omitempty"`
	ProductURL     string  `json:"product_url,omitempty" bson:"product_url,omitempty"`
	PurchaseURL    string  `json:"purchase_url" bson:"purchase_url"`
	NetworkID      string  `json:"network_id,omitempty" bson:"network_id,omitempty"`
	CommissionRate float64 `json:"commission_rate,omitempty" bson:"commission_rate,omitempty"`
	Availability   string  `json:"availability" bson:"availability"`
	ImageURL       string  `json:"image_url" bson:"image_url"`
	IsRealProduct  bool    `json:"is_real_product" bson:"is_real_product"`
	CandidateID    string  `json:"candidate_id,omitempty" bson:"candidate_id,omitempty"`
}

// EnrichedOutfit is the full response for one style query.
type EnrichedOutfit struct {
	MainDescription  string         `json:"main_description" bson:"main_description"`
	StyleKeywords    []string       `json:"style_keywords" bson:"style_keywords"`
	Tops             []EnrichedItem `json:"tops" bson:"tops"`
	Bottoms          []EnrichedItem `json:"bottoms" bson:"bottoms"`
	Accessories      []EnrichedItem `json:"accessories" bson:"accessories"`
	Shoes            []EnrichedItem `json:"shoes" bson:"shoes"`
	TotalPrice       float64        `json:"total_price" bson:"total_price"`
	RealProductCount int            `json:"real_product_count" bson:"real_product_count"`
}

// AllItems returns every enriched item across the four categories.
func (o *EnrichedOutfit) AllItems() []EnrichedItem {
	items := make([]EnrichedItem, 0, len(o.Tops)+len(o.Bottoms)+len(o.Accessories)+len(o.Shoes))
	items = append(items, o.Tops...)
	items = append(items, o.Bottoms...)
	items = append(items, o.Accessories...)
	items = append(items, o.Shoes...)
	return items
}

// ImageURLs returns every item image URL in the document, in category order.
func (o *EnrichedOutfit) ImageURLs() []string {
	var urls []string
	for _, it := range o.AllItems() {
		if it.ImageURL != "" {
			urls = append(urls, it.ImageURL)
		}
	}
	return urls
}
