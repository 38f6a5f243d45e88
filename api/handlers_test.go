package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raushankrgupta/stylefinder/cache"
	"github.com/raushankrgupta/stylefinder/models"
	"github.com/raushankrgupta/stylefinder/utils"
)

type stubStylist struct {
	available bool
	outfit    *models.GeneratedOutfit
	err       error
	calls     int
}

func (s *stubStylist) Available() bool { return s.available }

func (s *stubStylist) GenerateOutfit(ctx context.Context, query string) (*models.GeneratedOutfit, error) {
	s.calls++
	return s.outfit, s.err
}

type stubEnricher struct{}

func (stubEnricher) Enrich(ctx context.Context, outfit *models.GeneratedOutfit) *models.EnrichedOutfit {
	doc := &models.EnrichedOutfit{MainDescription: outfit.MainDescription}
	for _, item := range outfit.Tops {
		doc.Tops = append(doc.Tops, models.EnrichedItem{
			OutfitItem:    item,
			Price:         25,
			IsRealProduct: true,
			ImageURL:      "https://img.example.com/a.jpg",
		})
	}
	doc.TotalPrice = float64(len(doc.Tops)) * 25
	doc.RealProductCount = len(doc.Tops)
	return doc
}

type stubSearcher struct {
	products []models.CandidateProduct
}

func (s *stubSearcher) Aggregate(ctx context.Context, query, category string) []models.CandidateProduct {
	return s.products
}

type passthroughRanker struct{}

func (passthroughRanker) Rank(products []models.CandidateProduct) []models.CandidateProduct {
	return products
}

func testHandlers(stylist *stubStylist, searcher *stubSearcher) *Handlers {
	return NewHandlers(
		stylist,
		stubEnricher{},
		searcher,
		passthroughRanker{},
		cache.NewMemoryCache(time.Minute, 10),
		nil,
	)
}

func styleBody(query string) *strings.Reader {
	b, _ := json.Marshal(StyleRequest{Query: query})
	return strings.NewReader(string(b))
}

func TestStyleHandlerGeneratesAndCaches(t *testing.T) {
	stylist := &stubStylist{
		available: true,
		outfit: &models.GeneratedOutfit{
			MainDescription: "Casual friday",
			Tops:            []models.OutfitItem{{Name: "oxford shirt", Category: models.CategoryTops}},
		},
	}
	h := testHandlers(stylist, &stubSearcher{})

	rec := httptest.NewRecorder()
	h.StyleHandler(rec, httptest.NewRequest(http.MethodPost, "/style", styleBody("Casual Friday")))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp StyleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Cached)
	assert.Equal(t, 1, stylist.calls)

	// Same query (different casing) hits the cache, not the stylist.
	rec = httptest.NewRecorder()
	h.StyleHandler(rec, httptest.NewRequest(http.MethodPost, "/style", styleBody("casual   friday")))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Cached)
	assert.Equal(t, 1, stylist.calls)
}

func TestStyleHandlerRefreshBypassesCache(t *testing.T) {
	stylist := &stubStylist{
		available: true,
		outfit:    &models.GeneratedOutfit{Tops: []models.OutfitItem{{Name: "tee"}}},
	}
	h := testHandlers(stylist, &stubSearcher{})

	rec := httptest.NewRecorder()
	h.StyleHandler(rec, httptest.NewRequest(http.MethodPost, "/style", styleBody("weekend")))
	require.Equal(t, http.StatusOK, rec.Code)

	b, _ := json.Marshal(StyleRequest{Query: "weekend", Refresh: true})
	rec = httptest.NewRecorder()
	h.StyleHandler(rec, httptest.NewRequest(http.MethodPost, "/style", strings.NewReader(string(b))))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, stylist.calls)
}

func TestStyleHandlerValidation(t *testing.T) {
	h := testHandlers(&stubStylist{available: true}, &stubSearcher{})

	rec := httptest.NewRecorder()
	h.StyleHandler(rec, httptest.NewRequest(http.MethodPost, "/style", styleBody("  ")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.StyleHandler(rec, httptest.NewRequest(http.MethodPost, "/style", strings.NewReader("{not json")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStyleHandlerUnavailableStylist(t *testing.T) {
	h := testHandlers(&stubStylist{available: false}, &stubSearcher{})

	rec := httptest.NewRecorder()
	h.StyleHandler(rec, httptest.NewRequest(http.MethodPost, "/style", styleBody("anything")))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSearchHandler(t *testing.T) {
	searcher := &stubSearcher{products: []models.CandidateProduct{
		{ID: "p1", Name: "Jeans", Brand: "Levi's"},
	}}
	h := testHandlers(&stubStylist{}, searcher)

	rec := httptest.NewRecorder()
	h.SearchHandler(rec, httptest.NewRequest(http.MethodGet, "/products/search?q=jeans&category=bottoms", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "bottoms", resp.Category)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "p1", resp.Products[0].ID)
}

func TestSearchHandlerRequiresQuery(t *testing.T) {
	h := testHandlers(&stubStylist{}, &stubSearcher{})

	rec := httptest.NewRecorder()
	h.SearchHandler(rec, httptest.NewRequest(http.MethodGet, "/products/search", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchHandlerEmptyResults(t *testing.T) {
	h := testHandlers(&stubStylist{}, &stubSearcher{})

	rec := httptest.NewRecorder()
	h.SearchHandler(rec, httptest.NewRequest(http.MethodGet, "/products/search?q=nothing", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"products":[]`)
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	protected := AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := GetUserIDFromContext(r.Context())
		require.NoError(t, err)
		w.Write([]byte(userID))
	}))

	// No token.
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/looks", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Garbage token.
	req := httptest.NewRequest(http.MethodGet, "/looks", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec = httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Valid token.
	token, err := utils.GenerateToken("user-42")
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/looks", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-42", rec.Body.String())
}

func TestOptionalAuthMiddlewareLetsAnonymousThrough(t *testing.T) {
	open := OptionalAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := GetUserIDFromContext(r.Context())
		assert.Error(t, err)
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	open.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/click", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterRoutes(t *testing.T) {
	h := testHandlers(&stubStylist{available: true}, &stubSearcher{})
	router := mux.NewRouter()
	h.RegisterRoutes(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/search?q=tee", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Unknown routes 404 through the router.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
