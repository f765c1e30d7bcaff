package middleware

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const cartCountKey = "cart_count"

type CartBadgeCfg struct {
	CookieName string
}

// CartBadge exposes the header cart count without a backend call per
// page view: cart handlers write the count to a plain cookie after
// every mutation and this middleware reads it back.
func CartBadge(cfg CartBadgeCfg) gin.HandlerFunc {
	name := strings.TrimSpace(cfg.CookieName)
	if name == "" {
		name = "nexa_cart_count"
	}

	return func(c *gin.Context) {
		n := 0
		if raw, err := c.Cookie(name); err == nil && raw != "" {
			if v, err := strconv.Atoi(raw); err == nil && v > 0 {
				n = v
			}
		}
		c.Set(cartCountKey, n)
		c.Next()
	}
}

func GetCartCount(c *gin.Context) int {
	v, ok := c.Get(cartCountKey)
	if !ok {
		return 0
	}
	n, _ := v.(int)
	return n
}

// SetCartCountCookie is called by cart handlers after a mutation so the
// badge reflects the server-confirmed count on the next render.
func SetCartCountCookie(c *gin.Context, name string, count int, secure bool) {
	if count < 0 {
		count = 0
	}
	c.SetCookie(name, strconv.Itoa(count), 30*24*3600, "/", "", secure, false)
}
