package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// The auth provider is external: it runs the login flow and sets a
// signed JWT cookie. This middleware only reads the resolved state; it
// never issues or refreshes tokens.

type SessionCfg struct {
	CookieName string
	JWTSecret  []byte
}

// ContextUser is the resolved authentication state for one request.
type ContextUser struct {
	ID         string
	Email      string
	Role       string
	CustomerID string
}

// CustomerIdentity is the logical customer id the storefront keys
// wishlist and orders by: customerId when present, user id otherwise.
func (u ContextUser) CustomerIdentity() string {
	if u.CustomerID != "" {
		return u.CustomerID
	}
	return u.ID
}

func (u ContextUser) IsAdmin() bool { return u.Role == "admin" }

type sessionClaims struct {
	Email      string `json:"email"`
	Role       string `json:"role"`
	CustomerID string `json:"customerId"`
	jwt.RegisteredClaims
}

const ctxKeyUser = "session_user"

// Session parses the auth provider's cookie into the request context.
// An absent, expired or tampered token simply leaves the request
// unauthenticated; rejecting it is the route guards' job.
func Session(cfg SessionCfg) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(cfg.CookieName)
		if err != nil || raw == "" {
			c.Next()
			return
		}

		var claims sessionClaims
		token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return cfg.JWTSecret, nil
		}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithLeeway(30*time.Second))
		if err != nil || !token.Valid || claims.Subject == "" {
			c.Next()
			return
		}

		c.Set(ctxKeyUser, ContextUser{
			ID:         claims.Subject,
			Email:      claims.Email,
			Role:       claims.Role,
			CustomerID: claims.CustomerID,
		})
		c.Next()
	}
}

// CurrentUser retrieves the authenticated user from the gin context.
// Returns the user and true if authenticated, or zero value and false.
func CurrentUser(c *gin.Context) (ContextUser, bool) {
	v, ok := c.Get(ctxKeyUser)
	if !ok {
		return ContextUser{}, false
	}
	u, ok := v.(ContextUser)
	if !ok || u.ID == "" {
		return ContextUser{}, false
	}
	return u, true
}
