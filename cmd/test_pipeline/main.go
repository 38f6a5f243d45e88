package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/raushankrgupta/stylefinder/aggregator"
	"github.com/raushankrgupta/stylefinder/config"
	"github.com/raushankrgupta/stylefinder/fetch"
	"github.com/raushankrgupta/stylefinder/imageresolver"
	"github.com/raushankrgupta/stylefinder/sources"
)

func main() {
	config.LoadConfig()

	queries := []struct {
		query    string
		category string
	}{
		{"nike air force 1", "shoes"},
		{"levi's 501 jeans", "bottoms"},
		{"white linen shirt", "tops"},
	}

	fetcher := fetch.NewFetcher()
	agg := aggregator.New(sources.Registered(fetcher)...)
	resolver := imageresolver.New(fetcher, sources.ImageSource())

	for _, q := range queries {
		fmt.Printf("Searching: %s (%s)\n", q.query, q.category)

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		products := aggregator.Rank(agg.Aggregate(ctx, q.query, q.category))
		fmt.Printf("Found %d products\n", len(products))

		for i, p := range products {
			if i >= 3 {
				break
			}
			b, _ := json.MarshalIndent(p, "", "  ")
			fmt.Printf("Product: %s\n", string(b))
		}

		req := imageresolver.Request{Name: q.query, Category: q.category}
		if len(products) > 0 {
			req.Brand = products[0].Brand
			req.CandidateImageURL = products[0].PrimaryImage()
			req.ProductPageURL = products[0].ProductURL
		}
		fmt.Printf("Resolved image: %s\n", resolver.Resolve(ctx, req))
		cancel()
		fmt.Println("--------------------------------------------------")
	}
}
