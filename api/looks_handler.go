package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/raushankrgupta/stylefinder/models"
	"github.com/raushankrgupta/stylefinder/utils"
)

// SaveLookRequest represents the payload for saving a styled look
type SaveLookRequest struct {
	Query  string                `json:"query"`
	Outfit models.EnrichedOutfit `json:"outfit"`
}

// LooksResponse represents a page of the user's saved looks
type LooksResponse struct {
	Looks       []models.SavedLook `json:"looks"`
	Total       int64              `json:"total"`
	CurrentPage int                `json:"current_page"`
	TotalPages  int                `json:"total_pages"`
}

// SaveLookHandler persists a styled look for the authenticated user. Outfit
// images are mirrored to S3 so the look survives retailer CDN links dying.
func (h *Handlers) SaveLookHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Save Look API]")

	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req SaveLookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Query == "" || len(req.Outfit.AllItems()) == 0 {
		utils.RespondError(w, &logMessageBuilder, "Query and a non-empty outfit are required", http.StatusBadRequest)
		return
	}

	imageURLs := req.Outfit.ImageURLs()
	urlToKey := utils.MirrorImagesToS3(r.Context(), imageURLs, "look_images")

	// Keep mirror keys aligned with the outfit's image order; unmirrored
	// images keep their original URL.
	imageKeys := make([]string, 0, len(imageURLs))
	for _, url := range imageURLs {
		if key, ok := urlToKey[url]; ok {
			imageKeys = append(imageKeys, key)
		} else {
			imageKeys = append(imageKeys, url)
		}
	}
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Mirrored %d of %d images", len(urlToKey), len(imageURLs)))

	look := models.SavedLook{
		UserID:    userID,
		Query:     req.Query,
		Outfit:    req.Outfit,
		ImageKeys: imageKeys,
		CreatedAt: time.Now(),
	}

	collection := utils.GetCollection("looks")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := collection.InsertOne(ctx, look)
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to save look: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to save look", http.StatusInternalServerError)
		return
	}
	look.ID = res.InsertedID.(primitive.ObjectID)

	utils.AddToLogMessage(&logMessageBuilder, "Look saved")
	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Look saved",
		"look":    look,
	})
}

// ListLooksHandler returns the user's saved looks, newest first, with
// presigned image URLs.
func (h *Handlers) ListLooksHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[List Looks API]")

	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	page := 1
	limit := 10
	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p > 0 {
		page = p
	}
	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l > 0 {
		limit = l
	}

	collection := utils.GetCollection("looks")
	filter := bson.M{"user_id": userID}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	total, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to fetch looks", http.StatusInternalServerError)
		return
	}

	findOptions := options.Find()
	findOptions.SetSort(bson.D{{Key: "created_at", Value: -1}})
	findOptions.SetSkip(int64((page - 1) * limit))
	findOptions.SetLimit(int64(limit))

	cursor, err := collection.Find(ctx, filter, findOptions)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to fetch looks", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var looks []models.SavedLook
	if err = cursor.All(ctx, &looks); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to decode looks", http.StatusInternalServerError)
		return
	}

	for i := range looks {
		looks[i].ImageKeys = utils.PresignImageURLs(r.Context(), looks[i].ImageKeys)
	}

	// Ensure empty slice is returned as [] instead of null
	if looks == nil {
		looks = []models.SavedLook{}
	}

	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Returning %d looks (page %d)", len(looks), page))
	utils.RespondJSON(w, http.StatusOK, LooksResponse{
		Looks:       looks,
		Total:       total,
		CurrentPage: page,
		TotalPages:  totalPages,
	})
}
