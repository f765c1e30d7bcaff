package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/api"
)

func listEnvelope(w http.ResponseWriter, data any) {
	raw, _ := json.Marshal(data)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(api.Envelope{
		Success:    true,
		Message:    "OK",
		Data:       raw,
		StatusCode: http.StatusOK,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})
}

func TestHomeRendersDealsAndSoldOutState(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /heroes/active", func(w http.ResponseWriter, r *http.Request) {
		listEnvelope(w, []api.Hero{{ID: "h1", Title: "Summer Sale", Active: true}})
	})
	mux.HandleFunc("GET /hot-deals/active", func(w http.ResponseWriter, r *http.Request) {
		listEnvelope(w, []api.HotDeal{
			{
				ID: "d1", ProductID: "p1", ProductName: "Widget", ProductSlug: "widget",
				PriceCents: 1249, DealPriceCents: 899, DiscountPercent: 28, Currency: "USD",
				EndDate: time.Now().Add(30 * time.Hour), StockLimit: 20, SoldCount: 5, Active: true,
			},
			{
				ID: "d2", ProductID: "p2", ProductName: "Gadget", ProductSlug: "gadget",
				PriceCents: 5000, DealPriceCents: 3000, DiscountPercent: 40, Currency: "USD",
				EndDate: time.Now().Add(2 * time.Hour), StockLimit: 10, SoldCount: 10, Active: true,
			},
		})
	})

	r, client := newTestApp(t, mux)
	h := NewHomeHandler(api.NewHeroService(client), api.NewHotDealService(client), testLogger())
	r.GET("/", h.Index)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Summer Sale")
	assert.Contains(t, body, "Ends in 1d ", "deals beyond a day show the day count")
	assert.Contains(t, body, "Out of Stock", "exhausted deal disables add-to-cart")
	assert.Contains(t, body, "Add to Cart")
}

func TestHomeBackendFailureShowsRetry(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	r, client := newTestApp(t, mux)
	h := NewHomeHandler(api.NewHeroService(client), api.NewHotDealService(client), testLogger())
	r.GET("/", h.Index)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "could not load")
	assert.Contains(t, w.Body.String(), "Retry")
	assert.NotContains(t, w.Body.String(), "deal-card", "no half-rendered content on failure")
}
