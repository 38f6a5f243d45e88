package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/raushankrgupta/stylefinder/models"
	"github.com/raushankrgupta/stylefinder/utils"
)

// ClickRequest represents a purchase-link click to record for attribution
type ClickRequest struct {
	CandidateID string `json:"candidate_id" validate:"required"`
	PurchaseURL string `json:"purchase_url" validate:"required,url"`
	NetworkID   string `json:"network_id" validate:"required"`
	SourceName  string `json:"source_name"`
}

// ClickHandler records an outbound purchase click in the database and streams
// it to the attribution pipeline. Works for anonymous users too.
func (h *Handlers) ClickHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Click API]")

	var req ClickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Validation failed: %v", err), http.StatusBadRequest)
		return
	}

	userID, _ := GetUserIDFromContext(r.Context())

	// Affiliate links are frequently shortened; store the real destination.
	finalURL := req.PurchaseURL
	if resolved, err := utils.ResolveShortenedURL(req.PurchaseURL); err == nil {
		finalURL = resolved
	} else {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Could not resolve purchase URL: %v", err))
	}

	event := models.ClickEvent{
		EventID:     uuid.NewString(),
		UserID:      userID,
		CandidateID: req.CandidateID,
		PurchaseURL: finalURL,
		NetworkID:   req.NetworkID,
		SourceName:  req.SourceName,
		ClickedAt:   time.Now(),
	}

	collection := utils.GetCollection("clicks")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := collection.InsertOne(ctx, event); err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to store click: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to record click", http.StatusInternalServerError)
		return
	}

	h.Clicks.PublishClick(r.Context(), event)
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Click recorded for candidate %s", req.CandidateID))

	utils.RespondJSON(w, http.StatusCreated, map[string]string{
		"message":      "Click recorded",
		"purchase_url": finalURL,
	})
}
