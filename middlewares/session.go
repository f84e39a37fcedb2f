package middlewares

import (
	"github.com/gin-gonic/gin"

	"github.com/astrenrest/storefront/services"
)

const (
	SessionCookie = "astren_session"
	SessionKey    = "session"
)

// SessionMiddleware attaches the caller's session to the request,
// creating a fresh one (and setting the cookie) when none exists. An
// X-Session-Id header takes precedence over the cookie so non-browser
// clients can hold a session too.
func SessionMiddleware(manager *services.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Session-Id")
		if id == "" {
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				id = cookie
			}
		}

		sess := manager.GetOrCreate(id)
		if sess.ID != id {
			c.SetCookie(SessionCookie, sess.ID, 0, "/", "", false, true)
			c.Header("X-Session-Id", sess.ID)
		}

		c.Set(SessionKey, sess)
		c.Next()
	}
}

// SessionFromContext returns the session attached by SessionMiddleware.
func SessionFromContext(c *gin.Context) *services.Session {
	if v, ok := c.Get(SessionKey); ok {
		if sess, ok := v.(*services.Session); ok {
			return sess
		}
	}
	return nil
}
