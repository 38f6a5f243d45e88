package aggregator

import (
	"context"
	"fmt"
	"sync"

	"github.com/raushankrgupta/stylefinder/models"
	"github.com/raushankrgupta/stylefinder/sources"
)

// Aggregator fans a query out to every registered source adapter at once and
// merges whatever comes back. It always waits for all adapters to settle:
// a late, higher-commission source still matters for ranking, so there is no
// early return and no race.
type Aggregator struct {
	adapters []sources.Adapter
}

func New(adapters ...sources.Adapter) *Aggregator {
	return &Aggregator{adapters: adapters}
}

// Adapters returns the registered adapters in registration order.
func (a *Aggregator) Adapters() []sources.Adapter {
	return a.adapters
}

// Aggregate runs every adapter concurrently and concatenates their results in
// registration order, preserving each adapter's native ordering. A failing or
// panicking adapter contributes an empty slice; nothing propagates.
func (a *Aggregator) Aggregate(ctx context.Context, query, category string) []models.CandidateProduct {
	results := make([][]models.CandidateProduct, len(a.adapters))

	var wg sync.WaitGroup
	for i, adapter := range a.adapters {
		wg.Add(1)
		go func(i int, adapter sources.Adapter) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					fmt.Printf("[Aggregator] %s panicked: %v\n", adapter.Name(), r)
					results[i] = nil
				}
			}()
			results[i] = adapter.Search(ctx, query, category)
		}(i, adapter)
	}
	wg.Wait()

	var merged []models.CandidateProduct
	for _, rs := range results {
		merged = append(merged, rs...)
	}
	return merged
}
