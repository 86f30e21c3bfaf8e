package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/osuarez/clinic-manager/internal/session"
)

const loginPath = "/login"

type AuthMiddleware struct {
	sessions *session.Manager
}

func NewAuthMiddleware(sessions *session.Manager) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// RequireSession gates protected routes: without a live session the
// request is redirected to the login page instead of erroring.
func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(m.sessions.CookieName())
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		sess, err := m.sessions.Get(c.Request.Context(), token)
		if err != nil {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		c.Set("sessionID", sess.ID.String())
		c.Set("sessionUserID", sess.UserID.String())
		c.Set("sessionEmail", sess.Email)
		c.Next()
	}
}
