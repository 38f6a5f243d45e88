package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	MongoURI string
	Port     string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	GeminiAPIKey string

	// Google Programmable Search, used by the image-search fallback
	GoogleCSEKey string
	GoogleCSECX  string

	// Product source credentials. A missing value disables that source; it is
	// never a startup failure.
	RakutenAppID       string
	RakutenAffiliateID string
	ShopStylePID       string

	RedisAddr   string
	KafkaBroker string

	AWSRegion     string
	AWSBucketName string
)

// LoadConfig loads environment variables from .env file
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values or system environment variables")
	}

	MongoURI = os.Getenv("MONGO_URI")
	if MongoURI == "" {
		MongoURI = "mongodb://localhost:27017/"
	}

	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "8080"
	}

	GoogleClientID = os.Getenv("GOOGLE_CLIENT_ID")
	GoogleClientSecret = os.Getenv("GOOGLE_CLIENT_SECRET")
	GoogleRedirectURL = os.Getenv("GOOGLE_REDIRECT_URL")
	if GoogleRedirectURL == "" {
		GoogleRedirectURL = "http://localhost:8080/auth/google/callback"
	}

	GeminiAPIKey = os.Getenv("GEMINI_API_KEY")

	GoogleCSEKey = os.Getenv("GOOGLE_CSE_KEY")
	GoogleCSECX = os.Getenv("GOOGLE_CSE_CX")

	RakutenAppID = os.Getenv("RAKUTEN_APP_ID")
	RakutenAffiliateID = os.Getenv("RAKUTEN_AFFILIATE_ID")
	ShopStylePID = os.Getenv("SHOPSTYLE_PID")

	RedisAddr = os.Getenv("REDIS_ADDR")
	KafkaBroker = os.Getenv("KAFKA_BROKER")

	AWSRegion = os.Getenv("AWS_REGION")
	if AWSRegion == "" {
		AWSRegion = "us-east-1"
	}
	AWSBucketName = os.Getenv("AWS_BUCKET_NAME")
}
