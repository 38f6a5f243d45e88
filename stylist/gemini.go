package stylist

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/raushankrgupta/stylefinder/models"
)

const defaultModel = "gemini-1.5-flash"

const outfitPrompt = `You are a professional fashion stylist. Compose a complete outfit for this request: %q

Respond with JSON only, matching exactly this shape:
{
  "main_description": "two sentences describing the overall look",
  "style_keywords": ["keyword", ...],
  "tops": [{"name": "...", "brand": "...", "description": "...", "category": "tops"}],
  "bottoms": [...],
  "accessories": [...],
  "shoes": [...]
}

Rules:
- Suggest real, currently sold products from well known brands.
- 1-2 items per category. Every item needs name, brand and a one line description.
- Set each item's "category" to the category it appears under.`

// Stylist generates outfit compositions with Gemini.
type Stylist struct {
	client *genai.Client
	model  string
}

// New returns a nil Stylist when no API key is configured; callers check
// Available before use.
func New(ctx context.Context, apiKey string) (*Stylist, error) {
	if apiKey == "" {
		return nil, nil
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %v", err)
	}
	return &Stylist{client: client, model: defaultModel}, nil
}

func (s *Stylist) Available() bool {
	return s != nil && s.client != nil
}

// GenerateOutfit asks the model for a structured outfit and decodes it.
func (s *Stylist) GenerateOutfit(ctx context.Context, query string) (*models.GeneratedOutfit, error) {
	if !s.Available() {
		return nil, fmt.Errorf("stylist is not configured (missing GEMINI_API_KEY)")
	}

	model := s.client.GenerativeModel(s.model)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(fmt.Sprintf(outfitPrompt, query)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate outfit: %v", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no content generated")
	}

	var raw strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			raw.WriteString(string(text))
		}
	}

	outfit, err := ParseOutfit(raw.String())
	if err != nil {
		return nil, err
	}
	return outfit, nil
}

func (s *Stylist) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

// ParseOutfit decodes a model response, tolerating markdown code fences that
// some model versions emit despite the JSON MIME type.
func ParseOutfit(raw string) (*models.GeneratedOutfit, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var outfit models.GeneratedOutfit
	if err := json.Unmarshal([]byte(cleaned), &outfit); err != nil {
		return nil, fmt.Errorf("failed to parse outfit response: %v", err)
	}
	if len(outfit.Tops)+len(outfit.Bottoms)+len(outfit.Accessories)+len(outfit.Shoes) == 0 {
		return nil, fmt.Errorf("outfit response contained no items")
	}
	return &outfit, nil
}
