package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User account states.
const (
	UserStatusPending  = "pending"
	UserStatusVerified = "verified"
)

// User represents a registered account. Google-linked accounts have no
// password and are created verified.
type User struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Email           string             `bson:"email" json:"email"`
	Password        string             `bson:"password,omitempty" json:"-"`
	GoogleID        string             `bson:"google_id,omitempty" json:"-"`
	Gender          string             `bson:"gender,omitempty" json:"gender,omitempty"`
	StylePreference string             `bson:"style_preference,omitempty" json:"style_preference,omitempty"`
	Status          string             `bson:"status" json:"status"`
	OTP             string             `bson:"otp,omitempty" json:"-"`
	OTPExpiresAt    time.Time          `bson:"otp_expires_at,omitempty" json:"-"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
}
