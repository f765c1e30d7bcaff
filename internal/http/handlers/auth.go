package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/flash"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/render"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/pkg/view"
)

// AuthHandler bridges to the external auth provider. Sign-in happens
// there; this side only drops the session cookie on sign-out.
type AuthHandler struct {
	loginURL   string
	authCookie string
	secure     bool
	flash      *flash.Codec
}

func NewAuthHandler(loginURL, authCookie string, secure bool, fc *flash.Codec) *AuthHandler {
	return &AuthHandler{loginURL: loginURL, authCookie: authCookie, secure: secure, flash: fc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	target := h.loginURL
	if rt := c.Query("return_to"); rt != "" && rt[0] == '/' {
		target += "?return_to=" + rt
	}
	c.Redirect(http.StatusFound, target)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.authCookie, "", -1, "/", "", h.secure, true)
	render.RedirectWithFlash(c, h.flash, "/", view.FlashInfo, "Signed out.")
}
