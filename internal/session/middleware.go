package session

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sharegeb/pkg/apperror"
)

const contextKey = "session_record"

// RequirePage guards the HTML pages: unauthenticated requests are
// redirected to the login page.
func (m *Manager) RequirePage() gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, ok := m.fromRequest(c)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set(contextKey, rec)
		c.Next()
	}
}

// RequireJSON guards the JSON endpoints: unauthenticated requests get the
// structured failure payload.
func (m *Manager) RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, ok := m.fromRequest(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": apperror.ErrNotLoggedIn.Error()})
			c.Abort()
			return
		}
		c.Set(contextKey, rec)
		c.Next()
	}
}

func (m *Manager) fromRequest(c *gin.Context) (*Record, bool) {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie == "" {
		return nil, false
	}

	rec, err := m.Resolve(c.Request.Context(), cookie)
	if err != nil {
		return nil, false
	}

	return rec, true
}

// FromContext returns the record set by the guard middleware.
func FromContext(c *gin.Context) (*Record, bool) {
	val, exists := c.Get(contextKey)
	if !exists {
		return nil, false
	}
	rec, ok := val.(*Record)
	return rec, ok
}
