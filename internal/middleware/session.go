package middleware

import (
	"errors"
	"net/http" // HTTP status codes

	"alumni_portal/internal/session" // Session store
	"alumni_portal/internal/utils"   // Token errors

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// IdentityKey is the gin context key holding *session.Identity
const IdentityKey = "identity"

// SessionLoader resolves the session cookie and stores the identity in the context.
// Requests without a valid session continue anonymously.
func SessionLoader(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName) // Read session cookie
		if err != nil || token == "" {
			c.Next()
			return
		}
		id, err := store.Load(c.Request.Context(), token)
		if err != nil {
			// Expired or forged tokens are routine, redis failures are not
			if !errors.Is(err, session.ErrNoSession) && !errors.Is(err, utils.ErrInvalidToken) {
				logrus.WithError(err).Warn("session lookup failed")
			}
			c.Next()
			return
		}
		c.Set(IdentityKey, id) // Store identity in context
		c.Next()
	}
}

// RequireSession redirects anonymous requests to the login flow
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentIdentity(c) == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentIdentity returns the identity loaded for this request, or nil
func CurrentIdentity(c *gin.Context) *session.Identity {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return nil
	}
	id, _ := v.(*session.Identity)
	return id
}
