package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/shared/apperr"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second, testLogger())
}

func writeEnvelope(w http.ResponseWriter, status int, success bool, msg string, data any) {
	raw, _ := json.Marshal(data)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Envelope{
		Success:    success,
		Message:    msg,
		Data:       raw,
		StatusCode: status,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})
}

func TestClientListDecodesPage(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("pageIndex"))
		assert.Equal(t, "10", r.URL.Query().Get("pageSize"))
		writeEnvelope(w, 200, true, "", Page[Product]{
			Items:       []Product{{ID: "p1"}, {ID: "p2"}},
			TotalItems:  25,
			CurrentPage: 1,
			PageSize:    10,
			TotalPages:  3,
		})
	}))

	svc := NewProductService(c)
	page, err := svc.List(context.Background(), PageRequest{Page: 1, Size: 10})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, TotalPages(page.TotalItems, page.PageSize), page.TotalPages)
}

func TestClientBusinessFailure(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 409, false, "Brand name already exists", nil)
	}))

	_, err := NewBrandService(c).Create(context.Background(), BrandRequest{Name: "Acme"})
	require.Error(t, err)
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.Conflict, ae.Kind)
	assert.Equal(t, "Brand name already exists", apperr.PublicMessage(err))
}

func TestClientNetworkFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on

	c := NewClient(srv.URL, time.Second, testLogger())
	_, err := NewProductService(c).List(context.Background(), PageRequest{})
	require.Error(t, err)
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.Unavailable, ae.Kind)
}

func TestClientNonEnvelopeErrorBody(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))

	_, err := NewProductService(c).Get(context.Background(), "p1")
	require.Error(t, err)
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.Unavailable, ae.Kind)
}

func TestDoRawReceiptPassthrough(t *testing.T) {
	pdf := []byte("%PDF-1.4 fake receipt")
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/o1/receipt", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="receipt-o1.pdf"`)
		_, _ = w.Write(pdf)
	}))

	blob, err := NewOrderService(c).DownloadReceipt(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, pdf, blob.Data, "content passes through untouched")
	assert.Equal(t, "application/pdf", blob.ContentType)
	assert.Equal(t, "receipt-o1.pdf", blob.Filename)
}

func TestCartQuantityRules(t *testing.T) {
	var deleted string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			deleted = r.URL.Path
		}
		writeEnvelope(w, 200, true, "", Cart{})
	}))
	svc := NewCartService(c)
	key := CartKey{GuestID: "guest-1"}

	_, err := svc.UpdateQuantity(context.Background(), key, "p1", -1)
	require.Error(t, err, "negative quantity never reaches the backend")

	_, err = svc.AddItem(context.Background(), key, "p1", 0)
	require.Error(t, err)

	// Quantity zero routes to removal.
	_, err = svc.UpdateQuantity(context.Background(), key, "p1", 0)
	require.NoError(t, err)
	assert.Equal(t, "/cart/items/p1", deleted)
}
