package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/polkiloo/orderdesk/internal/pkg/auth"
)

const (
	// StaffIDContextKey is a gin context key for the authenticated staff identifier.
	StaffIDContextKey = "staffID"

	// SessionTokenContextKey is a gin context key for the token the request was authenticated with.
	SessionTokenContextKey = "sessionToken"

	sessionCookieName = "orderdesk_session"
)

// TokenParser resolves a session token to a staff identifier.
type TokenParser interface {
	ParseToken(token string) (int64, error)
}

// AuthRequired ensures a staff member is signed in before accessing handler.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		staffID, err := parser.ParseToken(token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(StaffIDContextKey, staffID)
		c.Set(SessionTokenContextKey, token)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(sessionCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetSessionCookie writes the session token cookie, expiring it at expiresAt.
func SetSessionCookie(c *gin.Context, token string, expiresAt time.Time) {
	maxAge := 0
	if !expiresAt.IsZero() {
		maxAge = max(int(time.Until(expiresAt).Seconds()), 1)
	}
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(sessionCookieName, token, maxAge, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}

// ClearSessionCookie removes the session cookie.
func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
}
