package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/flash"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/pkg/view"
)

func WantsJSON(c *gin.Context) bool {
	if strings.Contains(c.GetHeader("Accept"), "application/json") {
		return true
	}
	return strings.HasPrefix(c.Request.URL.Path, "/api/")
}

func Fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// RequireAuth: without a session
// - pages: flash + redirect to login carrying return_to
// - JSON: 401
func RequireAuth(flashCodec *flash.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); ok {
			c.Next()
			return
		}
		redirectToLogin(c, flashCodec, "Sign in to continue.")
	}
}

// RequireAdmin: signed out goes to login; signed in without the admin
// role is bounced home (pages) or gets 403 (JSON).
func RequireAdmin(flashCodec *flash.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok {
			redirectToLogin(c, flashCodec, "Sign in to open the dashboard.")
			return
		}

		if !u.IsAdmin() {
			if WantsJSON(c) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
					"error":      "forbidden",
					"request_id": GetRequestID(c),
				})
				return
			}
			SetFlashCookie(c, flashCodec, view.Flash{
				Kind:    view.FlashError,
				Message: "You don't have access to that page.",
			})
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		c.Next()
	}
}

func redirectToLogin(c *gin.Context, flashCodec *flash.Codec, msg string) {
	if WantsJSON(c) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error":      "authentication required",
			"request_id": GetRequestID(c),
		})
		return
	}

	returnTo := c.Request.URL.RequestURI()
	SetFlashCookie(c, flashCodec, view.Flash{Kind: view.FlashWarning, Message: msg})
	c.Redirect(http.StatusFound, "/login?return_to="+url.QueryEscape(returnTo))
	c.Abort()
}
