package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/raushankrgupta/stylefinder/models"
	"github.com/raushankrgupta/stylefinder/utils"
)

// SearchResponse represents the raw aggregated product search result
type SearchResponse struct {
	Query    string                    `json:"query"`
	Category string                    `json:"category,omitempty"`
	Count    int                       `json:"count"`
	Products []models.CandidateProduct `json:"products"`
}

// SearchHandler fans the query out to every product source and returns the
// deduplicated, ranked union.
func (h *Handlers) SearchHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Search API]")

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		utils.RespondError(w, &logMessageBuilder, "Query parameter 'q' is required", http.StatusBadRequest)
		return
	}
	category := strings.TrimSpace(r.URL.Query().Get("category"))

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Searching products: %s (category=%s)", query, category))

	products := h.Ranker.Rank(h.Searcher.Aggregate(r.Context(), query, category))
	if products == nil {
		products = []models.CandidateProduct{}
	}
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Found %d products", len(products)))

	utils.RespondJSON(w, http.StatusOK, SearchResponse{
		Query:    query,
		Category: category,
		Count:    len(products),
		Products: products,
	})
}
