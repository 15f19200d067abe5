package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/graphico/brief-api/internal/constants"
	apierrors "github.com/graphico/brief-api/internal/errors"
)

// RequireAuth checks if the user is logged in via the session cookie. A 401
// here is what makes the front end open its auth overlay.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		email := session.Get(constants.SessionKeyUserEmail)

		if email == nil {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		// Store the email in context for easy access in handlers
		c.Set(constants.ContextKeyUserEmail, email)
		c.Next()
	}
}

// GetUserEmail retrieves the current user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	value, exists := c.Get(constants.ContextKeyUserEmail)
	if !exists {
		return "", false
	}
	email, ok := value.(string)
	if !ok || email == "" {
		return "", false
	}
	return email, true
}
