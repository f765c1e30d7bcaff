package render

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/flash"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/middleware"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/pkg/view"
)

// HTML renders a template with the chrome every page needs: the current
// user, the one-shot flash and the cart badge count. Page data goes under
// its own keys so templates read {{.Page.Title}} etc.
func HTML(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if u, ok := middleware.CurrentUser(c); ok {
		data["User"] = u
	}
	if f := middleware.GetFlash(c); f != nil {
		data["Flash"] = f
	}
	data["CartCount"] = middleware.GetCartCount(c)
	c.HTML(status, name, data)
}

// ErrorPage short-circuits the request with the shared error template.
func ErrorPage(c *gin.Context, status int, msg string) {
	c.Abort()
	c.HTML(status, "error.tmpl", gin.H{
		"Status":    status,
		"Message":   msg,
		"RequestID": middleware.GetRequestID(c),
	})
}

// RedirectWithFlash sets the flash cookie and issues a 303 so the
// follow-up GET shows the message exactly once.
func RedirectWithFlash(c *gin.Context, codec *flash.Codec, location string, kind view.FlashKind, msg string) {
	middleware.SetFlashCookie(c, codec, view.Flash{Kind: kind, Message: msg})
	c.Redirect(http.StatusSeeOther, location)
}
