package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/martijn/feedbackd/internal/core/service"
)

const (
	// SessionCookieName is the cookie carrying the signed session token
	SessionCookieName = "feedbackd_session"

	// SessionContextKey is where the resolved username lives in the gin context
	SessionContextKey = "session_user"
)

// SessionMiddleware resolves the session cookie to a username and
// stores it in the request context. It never aborts: routes that need
// an identity enforce it themselves through the ownership guard, and
// public routes stay reachable without a cookie.
func SessionMiddleware(sessionService *service.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(SessionCookieName)
		if err == nil && cookie != "" {
			if username, err := sessionService.CurrentUser(c.Request.Context(), cookie); err == nil {
				c.Set(SessionContextKey, username)
			}
		}
		c.Next()
	}
}

// CurrentUsername retrieves the session identity from the context. The
// second return is false when no valid session accompanied the request.
func CurrentUsername(c *gin.Context) (string, bool) {
	value, exists := c.Get(SessionContextKey)
	if !exists {
		return "", false
	}
	username, ok := value.(string)
	return username, ok && username != ""
}
