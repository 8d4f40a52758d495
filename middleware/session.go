package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie = "concierge_session"
	// Session cookies outlive the context TTL so a returning guest
	// keeps the same session id for transcript continuity.
	sessionMaxAge = 7 * 24 * 60 * 60
)

// SessionMiddleware assigns every client a stable session id cookie and
// exposes it on the gin context.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(sessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.New().String()
			c.SetCookie(sessionCookie, sessionID, sessionMaxAge, "/", "", false, true)
		}
		c.Set("sessionID", sessionID)
		c.Next()
	}
}

// SessionID returns the session id assigned by SessionMiddleware.
func SessionID(c *gin.Context) string {
	if id, ok := c.Get("sessionID"); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return "default"
}
