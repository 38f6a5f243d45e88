package aggregator

import (
	"sort"
	"strings"

	"github.com/raushankrgupta/stylefinder/models"
)

// DefaultCommissionEpsilon is the window within which two commission rates
// are treated as equal, to keep float jitter from flipping the order.
const DefaultCommissionEpsilon = 0.01

// Ranker deduplicates and orders candidate lists. The zero value uses the
// default commission epsilon.
type Ranker struct {
	CommissionEpsilon float64
}

// Rank removes duplicate candidates and sorts the remainder: higher
// commission first (within the epsilon window rates tie), cheaper first on a
// tie. The sort is stable, so equal candidates keep their aggregation order.
//
// Duplicates share a normalized (brand, name) key; the first-seen candidate
// wins even when a later duplicate is cheaper, so earlier-registered sources
// take precedence.
func (r Ranker) Rank(candidates []models.CandidateProduct) []models.CandidateProduct {
	eps := r.CommissionEpsilon
	if eps <= 0 {
		eps = DefaultCommissionEpsilon
	}

	seen := make(map[string]bool, len(candidates))
	out := make([]models.CandidateProduct, 0, len(candidates))
	for _, c := range candidates {
		key := dedupeKey(c.Brand, c.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}

	sort.SliceStable(out, func(i, j int) bool {
		diff := out[i].CommissionRate - out[j].CommissionRate
		if diff > eps {
			return true
		}
		if diff < -eps {
			return false
		}
		return out[i].Price < out[j].Price
	})

	return out
}

// Rank applies the default ranker.
func Rank(candidates []models.CandidateProduct) []models.CandidateProduct {
	return Ranker{}.Rank(candidates)
}

// dedupeKey is case-insensitive and whitespace-normalized so "Nike / Air
// Force 1" and "nike /  air force 1 " collapse to one key.
func dedupeKey(brand, name string) string {
	return normalize(brand) + "|" + normalize(name)
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
