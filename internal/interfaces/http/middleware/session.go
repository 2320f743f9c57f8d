// internal/interfaces/http/middleware/session.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie = "session_id"
	sessionMaxAge = 30 * 24 * 60 * 60
	sessionCtxKey = "session_id"
)

// Session ensures every request carries a session id, issuing a new
// cookie when none is present. The id scopes all persisted state: cart,
// language, customer details and edit sessions.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(sessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.New().String()
			c.SetCookie(sessionCookie, sessionID, sessionMaxAge, "/", "", false, true)
		}

		c.Set(sessionCtxKey, sessionID)
		c.Next()
	}
}

// SessionID returns the request's session id
func SessionID(c *gin.Context) string {
	return c.GetString(sessionCtxKey)
}
