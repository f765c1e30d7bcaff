package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/api"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/flash"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/guestid"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/templates"
)

var testSecret = []byte("test-secret")

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testFlashCodec() *flash.Codec {
	return flash.NewCodec(testSecret, "nexa_flash", false)
}

func testGuestCodec() *guestid.Codec {
	return guestid.New(testSecret, "nexa_guest", false)
}

// newTestApp builds a bare engine with the real templates and a client
// pointed at the given fake backend.
func newTestApp(t *testing.T, backend http.Handler) (*gin.Engine, *api.Client) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	tpl, err := templates.Load()
	require.NoError(t, err)

	r := gin.New()
	r.SetHTMLTemplate(tpl)
	return r, api.NewClient(srv.URL, 2*time.Second, testLogger())
}
