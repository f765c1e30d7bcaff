package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/api"
)

func cartEnvelope(w http.ResponseWriter, cart api.Cart) {
	raw, _ := json.Marshal(cart)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(api.Envelope{
		Success:    true,
		Message:    "OK",
		Data:       raw,
		StatusCode: http.StatusOK,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})
}

func TestAddItemUpdatesBadgeCookie(t *testing.T) {
	var sawGuestID atomic.Value
	mux := http.NewServeMux()
	mux.HandleFunc("POST /cart/items", func(w http.ResponseWriter, r *http.Request) {
		sawGuestID.Store(r.URL.Query().Get("guestId"))
		cartEnvelope(w, api.Cart{
			ID:       "cart-1",
			Currency: "USD",
			Items: []api.CartItem{
				{ProductID: "p1", Quantity: 2, PriceCents: 1099, Product: api.Product{ID: "p1", Name: "Widget"}},
			},
			SubtotalCents: 2198,
		})
	})

	r, client := newTestApp(t, mux)
	h := NewCartHandler(api.NewCartService(client), testGuestCodec(), testFlashCodec(), "nexa_cart_count", false, testLogger())
	r.POST("/cart/items", h.AddItem)

	w := postForm(t, r, "/cart/items", url.Values{
		"productId": {"p1"},
		"quantity":  {"2"},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)

	gid, _ := sawGuestID.Load().(string)
	assert.NotEmpty(t, gid, "guest id should be minted and forwarded")
	assert.Contains(t, gid, "guest-")

	var badge string
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "nexa_cart_count" {
			badge = ck.Value
		}
	}
	assert.Equal(t, "2", badge, "badge cookie reflects the server-confirmed count")
}

func TestUpdateQuantityNegativeNeverCallsBackend(t *testing.T) {
	var calls atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		cartEnvelope(w, api.Cart{ID: "cart-1", Currency: "USD"})
	})

	r, client := newTestApp(t, mux)
	h := NewCartHandler(api.NewCartService(client), testGuestCodec(), testFlashCodec(), "nexa_cart_count", false, testLogger())
	r.POST("/cart/items/:productID", h.UpdateQuantity)

	w := postForm(t, r, "/cart/items/p1", url.Values{"quantity": {"-1"}})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/cart", w.Header().Get("Location"))
	assert.Equal(t, int64(0), calls.Load(), "negative quantities are rejected client-side")
}

func TestUpdateQuantityZeroRemovesViaDelete(t *testing.T) {
	var method atomic.Value
	mux := http.NewServeMux()
	mux.HandleFunc("/cart/items/p1", func(w http.ResponseWriter, r *http.Request) {
		method.Store(r.Method)
		cartEnvelope(w, api.Cart{ID: "cart-1", Currency: "USD"})
	})

	r, client := newTestApp(t, mux)
	h := NewCartHandler(api.NewCartService(client), testGuestCodec(), testFlashCodec(), "nexa_cart_count", false, testLogger())
	r.POST("/cart/items/:productID", h.UpdateQuantity)

	w := postForm(t, r, "/cart/items/p1", url.Values{"quantity": {"0"}})

	require.Equal(t, http.StatusSeeOther, w.Code)
	got, _ := method.Load().(string)
	assert.Equal(t, http.MethodDelete, got, "zero quantity becomes a removal")

	var badge string
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "nexa_cart_count" {
			badge = ck.Value
		}
	}
	assert.Equal(t, "0", badge)
}
