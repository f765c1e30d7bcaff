package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/api"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/config"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/mailer"
)

func emptyList(w http.ResponseWriter) {
	raw, _ := json.Marshal([]struct{}{})
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(api.Envelope{
		Success:    true,
		Message:    "OK",
		Data:       raw,
		StatusCode: http.StatusOK,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})
}

// Builds the full engine the way cmd/web does, so the wiring itself is
// under test: template load, middleware chain, every route registration.
func TestNewRouterServesHome(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /heroes/active", func(w http.ResponseWriter, r *http.Request) { emptyList(w) })
	mux.HandleFunc("GET /hot-deals/active", func(w http.ResponseWriter, r *http.Request) { emptyList(w) })
	backend := httptest.NewServer(mux)
	t.Cleanup(backend.Close)

	cfg := &config.Config{
		ListenAddr:      ":0",
		BackendBaseURL:  backend.URL,
		RequestTimeout:  2 * time.Second,
		CookieSecret:    "test-cookie-secret",
		AuthCookieName:  "nexa_session",
		AuthJWTSecret:   "test-jwt-secret",
		GuestCookieName: "nexa_guest",
		FlashCookieName: "nexa_flash",
		MailerDriver:    "mock",
		SMTPFrom:        "no-reply@localhost",
	}
	require.NoError(t, cfg.Validate())

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := api.NewClient(cfg.BackendBaseURL, cfg.RequestTimeout, log)

	r, err := NewRouter(cfg, client, &mailer.Mock{}, log)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Hot Deals")
}

func TestNewRouterGuardsAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unexpected backend call", http.StatusInternalServerError)
	}))
	t.Cleanup(backend.Close)

	cfg := &config.Config{
		BackendBaseURL:  backend.URL,
		RequestTimeout:  2 * time.Second,
		CookieSecret:    "test-cookie-secret",
		AuthCookieName:  "nexa_session",
		AuthJWTSecret:   "test-jwt-secret",
		GuestCookieName: "nexa_guest",
		FlashCookieName: "nexa_flash",
		MailerDriver:    "mock",
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := api.NewClient(cfg.BackendBaseURL, cfg.RequestTimeout, log)

	r, err := NewRouter(cfg, client, &mailer.Mock{}, log)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/products", nil))

	require.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/login")
}
