package middleware

import (
	"haccp-ledger/internal/ledger"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// InjectUser puts the session operator on the request context so ledger
// mutations are audited under that name.
func InjectUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		if user, ok := sess.Get(SessionUserKey).(string); ok && user != "" {
			c.Set("CurrentUser", user)
			c.Request = c.Request.WithContext(ledger.WithActor(c.Request.Context(), user))
		}
		c.Next()
	}
}
