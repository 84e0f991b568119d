package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionCookie = "kgn_session"
	sessionKey    = "sessionID"
)

// FormSession gives every visitor a stable id so their form instances survive
// between requests. Unknown or malformed cookies are replaced.
func FormSession(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookie)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     SessionCookie,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				Secure:   secure,
				SameSite: http.SameSiteLaxMode,
			})
		}
		c.Set(sessionKey, id)
		c.Next()
	}
}

// SessionID returns the id set by FormSession.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
