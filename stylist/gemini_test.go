package stylist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleOutfitJSON = `{
	"main_description": "A breezy summer outfit.",
	"style_keywords": ["summer", "casual"],
	"tops": [{"name": "linen shirt", "brand": "Uniqlo", "description": "White linen", "category": "tops"}],
	"bottoms": [{"name": "chino shorts", "brand": "J.Crew", "description": "Stone chinos", "category": "bottoms"}],
	"accessories": [],
	"shoes": [{"name": "white sneaker", "brand": "Veja", "description": "Minimal sneaker", "category": "shoes"}]
}`

func TestParseOutfit(t *testing.T) {
	outfit, err := ParseOutfit(sampleOutfitJSON)
	require.NoError(t, err)

	assert.Equal(t, "A breezy summer outfit.", outfit.MainDescription)
	assert.Equal(t, []string{"summer", "casual"}, outfit.StyleKeywords)
	require.Len(t, outfit.Tops, 1)
	assert.Equal(t, "linen shirt", outfit.Tops[0].Name)
	assert.Equal(t, "tops", outfit.Tops[0].Category)
	assert.Len(t, outfit.Bottoms, 1)
	assert.Empty(t, outfit.Accessories)
	assert.Len(t, outfit.Shoes, 1)
}

func TestParseOutfitStripsCodeFences(t *testing.T) {
	fenced := "```json\n" + sampleOutfitJSON + "\n```"
	outfit, err := ParseOutfit(fenced)
	require.NoError(t, err)
	assert.Len(t, outfit.Tops, 1)
}

func TestParseOutfitRejectsGarbage(t *testing.T) {
	_, err := ParseOutfit("I cannot produce an outfit right now.")
	assert.Error(t, err)
}

func TestParseOutfitRejectsEmptyOutfit(t *testing.T) {
	_, err := ParseOutfit(`{"main_description": "nothing", "tops": []}`)
	assert.Error(t, err)
}

func TestStylistUnavailableWithoutKey(t *testing.T) {
	s, err := New(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, s.Available())

	_, err = s.GenerateOutfit(context.Background(), "anything")
	assert.Error(t, err)
}
