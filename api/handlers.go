package api

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/raushankrgupta/stylefinder/cache"
	"github.com/raushankrgupta/stylefinder/events"
	"github.com/raushankrgupta/stylefinder/models"
)

// OutfitGenerator is the AI styling dependency; *stylist.Stylist satisfies it.
type OutfitGenerator interface {
	Available() bool
	GenerateOutfit(ctx context.Context, query string) (*models.GeneratedOutfit, error)
}

// Enricher turns generated outfits into purchasable ones; *enrich.Orchestrator
// satisfies it.
type Enricher interface {
	Enrich(ctx context.Context, outfit *models.GeneratedOutfit) *models.EnrichedOutfit
}

// ProductSearcher backs the raw product search endpoint; *aggregator.Aggregator
// satisfies it.
type ProductSearcher interface {
	Aggregate(ctx context.Context, query, category string) []models.CandidateProduct
}

// Ranker orders candidate lists for presentation.
type Ranker interface {
	Rank(products []models.CandidateProduct) []models.CandidateProduct
}

// Handlers bundles the request handlers that need injected dependencies; auth
// handlers are package-level and talk to the database directly.
type Handlers struct {
	Stylist  OutfitGenerator
	Enricher Enricher
	Searcher ProductSearcher
	Ranker   Ranker
	Looks    cache.LookCache
	Clicks   *events.ClickProducer
	validate *validator.Validate
}

func NewHandlers(stylist OutfitGenerator, enricher Enricher, searcher ProductSearcher, ranker Ranker, looks cache.LookCache, clicks *events.ClickProducer) *Handlers {
	return &Handlers{
		Stylist:  stylist,
		Enricher: enricher,
		Searcher: searcher,
		Ranker:   ranker,
		Looks:    looks,
		Clicks:   clicks,
		validate: validator.New(),
	}
}

// RegisterRoutes mounts every endpoint on the router.
func (h *Handlers) RegisterRoutes(r *mux.Router) {
	r.Handle("/style", OptionalAuthMiddleware(http.HandlerFunc(h.StyleHandler))).Methods("POST", "OPTIONS")
	r.HandleFunc("/products/search", h.SearchHandler).Methods("GET", "OPTIONS")
	r.Handle("/click", OptionalAuthMiddleware(http.HandlerFunc(h.ClickHandler))).Methods("POST", "OPTIONS")
	r.Handle("/looks", AuthMiddleware(http.HandlerFunc(h.SaveLookHandler))).Methods("POST", "OPTIONS")
	r.Handle("/looks", AuthMiddleware(http.HandlerFunc(h.ListLooksHandler))).Methods("GET", "OPTIONS")

	r.HandleFunc("/auth/signup", SignupHandler).Methods("POST", "OPTIONS")
	r.HandleFunc("/auth/verify-otp", VerifyOTPHandler).Methods("POST", "OPTIONS")
	r.HandleFunc("/auth/login", LoginHandler).Methods("POST", "OPTIONS")
	r.HandleFunc("/auth/forgot-password", ForgotPasswordHandler).Methods("POST", "OPTIONS")
	r.HandleFunc("/auth/reset-password", ResetPasswordHandler).Methods("POST", "OPTIONS")
	r.HandleFunc("/auth/google/login", GoogleLoginHandler).Methods("GET")
	r.HandleFunc("/auth/google/callback", GoogleCallbackHandler).Methods("GET")
}
