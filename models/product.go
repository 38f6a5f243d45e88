package models

// Availability states reported by product sources.
const (
	AvailabilityInStock = "in_stock"
	AvailabilityLimited = "limited"
	AvailabilitySoldOut = "sold_out"
	AvailabilityUnknown = "unknown"
)

// NetworkDirect marks candidates that carry no affiliate wrapping.
const NetworkDirect = "direct"

// CandidateProduct represents one real, purchasable item found by a source.
// Instances live only for the duration of a request; persistence records are
// derived elsewhere.
type CandidateProduct struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Brand          string   `json:"brand"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"`
	Currency       string   `json:"currency"`
	SourceName     string   `json:"source_name"`
	ProductURL     string   `json:"product_url"`
	PurchaseURL    string   `json:"purchase_url"`
	NetworkID      string   `json:"network_id"`
	CommissionRate float64  `json:"commission_rate"`
	Availability   string   `json:"availability"`
	Images         []string `json:"images"` // first entry is the primary image
	Category       string   `json:"category,omitempty"`
}

// PrimaryImage returns the first image URL, or "" when the source had none.
func (p *CandidateProduct) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// ImageResult is a single hit from an image-serving source.
type ImageResult struct {
	URL        string `json:"url"`
	SourceLink string `json:"source_link"` // domain the image was found on
	Title      string `json:"title,omitempty"`
}
