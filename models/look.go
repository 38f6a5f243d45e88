package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SavedLook is an enriched outfit a user chose to keep
type SavedLook struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	Query     string             `bson:"query" json:"query"`
	Outfit    EnrichedOutfit     `bson:"outfit" json:"outfit"`
	ImageKeys []string           `bson:"image_keys,omitempty" json:"image_keys,omitempty"` // S3 mirror keys for the item images
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// ClickEvent records a user following a purchase link, for affiliate
// attribution
type ClickEvent struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	// EventID identifies the click across systems (stream consumers dedupe
	// on it); the Mongo ObjectID stays internal.
	EventID     string    `bson:"event_id" json:"event_id"`
	UserID      string    `bson:"user_id,omitempty" json:"user_id,omitempty"`
	CandidateID string    `bson:"candidate_id" json:"candidate_id"`
	PurchaseURL string    `bson:"purchase_url" json:"purchase_url"`
	NetworkID   string    `bson:"network_id" json:"network_id"`
	SourceName  string    `bson:"source_name,omitempty" json:"source_name,omitempty"`
	ClickedAt   time.Time `bson:"clicked_at" json:"clicked_at"`
}
