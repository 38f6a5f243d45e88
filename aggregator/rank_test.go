package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raushankrgupta/stylefinder/models"
)

func TestRankDeduplicatesFirstSeen(t *testing.T) {
	candidates := []models.CandidateProduct{
		{ID: "a", Brand: "Nike", Name: "Air Force 1", Price: 110, SourceName: "rakuten"},
		{ID: "b", Brand: "nike", Name: "air  force 1", Price: 90, SourceName: "shopstyle"},
		{ID: "c", Brand: "Adidas", Name: "Samba", Price: 100},
	}

	out := Rank(candidates)

	require.Len(t, out, 2)
	ids := []string{out[0].ID, out[1].ID}
	assert.Contains(t, ids, "a")
	assert.Contains(t, ids, "c")
	// First-seen wins even though the duplicate is cheaper.
	assert.NotContains(t, ids, "b")
}

func TestRankOrdersByCommissionThenPrice(t *testing.T) {
	candidates := []models.CandidateProduct{
		{ID: "low", CommissionRate: 0.02, Price: 50},
		{ID: "high", CommissionRate: 0.10, Price: 80},
		{ID: "mid-expensive", CommissionRate: 0.05, Price: 120},
		{ID: "mid-cheap", CommissionRate: 0.05, Price: 60},
	}

	out := Rank(candidates)

	require.Len(t, out, 4)
	assert.Equal(t, "high", out[0].ID)
	assert.Equal(t, "mid-cheap", out[1].ID)
	assert.Equal(t, "mid-expensive", out[2].ID)
	assert.Equal(t, "low", out[3].ID)
}

func TestRankCommissionEpsilonTies(t *testing.T) {
	// 0.050 and 0.055 are within the default epsilon, so price decides.
	candidates := []models.CandidateProduct{
		{ID: "expensive", CommissionRate: 0.055, Price: 200},
		{ID: "cheap", CommissionRate: 0.050, Price: 40},
	}

	out := Rank(candidates)

	require.Len(t, out, 2)
	assert.Equal(t, "cheap", out[0].ID)
}

func TestRankCustomEpsilon(t *testing.T) {
	candidates := []models.CandidateProduct{
		{ID: "expensive", CommissionRate: 0.055, Price: 200},
		{ID: "cheap", CommissionRate: 0.050, Price: 40},
	}

	// With a tight epsilon the commission gap is significant again.
	out := Ranker{CommissionEpsilon: 0.001}.Rank(candidates)

	require.Len(t, out, 2)
	assert.Equal(t, "expensive", out[0].ID)
}

func TestRankIsStableAndDeterministic(t *testing.T) {
	candidates := []models.CandidateProduct{
		{ID: "first", Brand: "A", Name: "x", CommissionRate: 0.05, Price: 50},
		{ID: "second", Brand: "B", Name: "y", CommissionRate: 0.05, Price: 50},
		{ID: "third", Brand: "C", Name: "z", CommissionRate: 0.05, Price: 50},
	}

	first := Rank(candidates)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Rank(candidates))
	}
	// Full ties keep input order.
	assert.Equal(t, "first", first[0].ID)
	assert.Equal(t, "second", first[1].ID)
	assert.Equal(t, "third", first[2].ID)
}

func TestRankEmptyInput(t *testing.T) {
	assert.Empty(t, Rank(nil))
	assert.Empty(t, Rank([]models.CandidateProduct{}))
}
