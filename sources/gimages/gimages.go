package gimages

import (
	"context"
	"fmt"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"

	"github.com/raushankrgupta/stylefinder/config"
	"github.com/raushankrgupta/stylefinder/models"
)

const resultCount = 8

// GoogleImages searches Google Programmable Search in image mode. It backs
// the image-resolution cascade's general search strategy and is registered
// standalone as an image source.
type GoogleImages struct {
	APIKey string
	CX     string
}

func New() *GoogleImages {
	return &GoogleImages{
		APIKey: config.GoogleCSEKey,
		CX:     config.GoogleCSECX,
	}
}

// SearchImages returns image hits for the query. Missing credentials or any
// API error yield an empty result.
func (g *GoogleImages) SearchImages(ctx context.Context, query string) []models.ImageResult {
	if g.APIKey == "" || g.CX == "" || query == "" {
		return nil
	}

	svc, err := customsearch.NewService(ctx, option.WithAPIKey(g.APIKey))
	if err != nil {
		fmt.Printf("[GoogleImages] failed to create service: %v\n", err)
		return nil
	}

	resp, err := svc.Cse.List().
		Cx(g.CX).
		Q(query).
		SearchType("image").
		Num(resultCount).
		Context(ctx).
		Do()
	if err != nil {
		fmt.Printf("[GoogleImages] search failed: %v\n", err)
		return nil
	}

	results := make([]models.ImageResult, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Link == "" {
			continue
		}
		results = append(results, models.ImageResult{
			URL:        item.Link,
			SourceLink: item.DisplayLink,
			Title:      item.Title,
		})
	}
	return results
}
