package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/raushankrgupta/stylefinder/cache"
	"github.com/raushankrgupta/stylefinder/models"
	"github.com/raushankrgupta/stylefinder/utils"
)

// StyleRequest represents the payload for outfit generation
type StyleRequest struct {
	Query   string `json:"query"`
	Refresh bool   `json:"refresh"`
}

// StyleResponse represents the full styled-and-enriched result
type StyleResponse struct {
	Query  string      `json:"query"`
	Cached bool        `json:"cached"`
	Outfit interface{} `json:"outfit"`
}

// StyleHandler handles the main styling request: generate an outfit for the
// query, then enrich every item with real purchasable products.
func (h *Handlers) StyleHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Style API]")

	var req StyleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		utils.RespondError(w, &logMessageBuilder, "Query is required", http.StatusBadRequest)
		return
	}
	if h.Stylist == nil || !h.Stylist.Available() {
		utils.RespondError(w, &logMessageBuilder, "Styling is not available", http.StatusServiceUnavailable)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Styling query: %s", req.Query))

	cacheKey := cache.NormalizeKey(req.Query)
	if h.Looks != nil && !req.Refresh {
		if outfit, ok := h.Looks.Get(r.Context(), cacheKey); ok {
			utils.AddToLogMessage(&logMessageBuilder, "Cache hit")
			utils.RespondJSON(w, http.StatusOK, StyleResponse{Query: req.Query, Cached: true, Outfit: outfit})
			return
		}
	}

	generated, err := h.Stylist.GenerateOutfit(r.Context(), req.Query)
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Outfit generation failed: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to generate outfit", http.StatusBadGateway)
		return
	}
	utils.AddToLogMessage(&logMessageBuilder, "Outfit generated, enriching with products")

	enriched := h.Enricher.Enrich(r.Context(), generated)
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Enriched outfit: %d real products, total %.2f", enriched.RealProductCount, enriched.TotalPrice))

	if h.Looks != nil {
		h.Looks.Set(r.Context(), cacheKey, enriched)
	}

	// Authenticated users get the look recorded in their history; the response
	// does not wait on it.
	if userID, authErr := GetUserIDFromContext(r.Context()); authErr == nil {
		go persistLook(userID, req.Query, enriched)
	}

	utils.RespondJSON(w, http.StatusOK, StyleResponse{Query: req.Query, Cached: false, Outfit: enriched})
}

func persistLook(userID, query string, outfit *models.EnrichedOutfit) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	look := models.SavedLook{
		UserID:    userID,
		Query:     query,
		Outfit:    *outfit,
		CreatedAt: time.Now(),
	}
	if _, err := utils.GetCollection("looks").InsertOne(ctx, look); err != nil {
		fmt.Printf("[Style API] failed to persist look for %s: %v\n", userID, err)
	}
}
