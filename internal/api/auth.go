package api

import (
	"errors"
	"net/http" // HTTP status codes
	"time"

	"alumni_portal/internal/oauth"
	"alumni_portal/internal/service"
	"alumni_portal/internal/session"
	"alumni_portal/internal/utils"

	"github.com/gin-gonic/gin" // Gin web framework
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"
)

const (
	stateKeyPrefix = "oauth:state:"
	stateTTL       = 10 * time.Minute
)

// LoginHandler starts the OAuth flow with a single-use state value
func LoginHandler(provider oauth.Provider, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := uuid.NewString()
		if err := utils.SetCache(c.Request.Context(), rdb, stateKeyPrefix+state, true, stateTTL); err != nil {
			serverError(c, "Failed to start login", err, nil)
			return
		}
		c.Redirect(http.StatusFound, provider.AuthCodeURL(state))
	}
}

// AuthorizeHandler completes the OAuth flow, upserts the admin and opens a session.
// Every failure sends the browser back to /login.
func AuthorizeHandler(provider oauth.Provider, admins *service.AdminService, store *session.Store, rdb *redis.Client, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		fail := func(reason string, err error) {
			entry := logrus.WithField("reason", reason)
			if err != nil {
				entry = entry.WithError(err)
			}
			entry.Error("Authorization failed")
			c.Redirect(http.StatusFound, "/login")
		}

		var ok bool
		found, err := utils.TakeCache(ctx, rdb, stateKeyPrefix+c.Query("state"), &ok)
		if err != nil || !found || !ok {
			fail("unknown state", err)
			return
		}
		code := c.Query("code")
		if code == "" {
			fail("missing code", errors.New(c.Query("error")))
			return
		}
		profile, err := provider.Exchange(ctx, code)
		if err != nil {
			fail("exchange", err)
			return
		}
		admin, err := admins.Upsert(ctx, profile.Email, profile.Name, profile.Picture)
		if err != nil {
			fail("upsert admin", err)
			return
		}
		token, err := store.Create(ctx, session.NewIdentity(admin, profile.GivenName, profile.FamilyName))
		if err != nil {
			fail("create session", err)
			return
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(session.CookieName, token, int(store.TTL().Seconds()), "/", "", secure, true)
		c.Redirect(http.StatusFound, "/dashboard")
	}
}

// LogoutHandler drops the session and returns to the landing page
func LogoutHandler(store *session.Store, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(session.CookieName); err == nil && token != "" {
			if err := store.Destroy(c.Request.Context(), token); err != nil {
				logrus.WithError(err).Warn("Failed to destroy session")
			}
		}
		c.SetCookie(session.CookieName, "", -1, "/", "", secure, true)
		c.Redirect(http.StatusFound, "/")
	}
}

// RegisterPageHandler renders the registration form
func RegisterPageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"flash": popFlash(c)})
	}
}

// RegisterHandler creates an alumni profile from the registration form
func RegisterHandler(alumni *service.AlumniService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.RegisterInput
		if err := c.ShouldBind(&req); err != nil {
			setFlash(c, "Please fill in all required fields.")
			c.Redirect(http.StatusFound, "/register")
			return
		}
		if _, err := alumni.Register(c.Request.Context(), req); err != nil {
			if errors.Is(err, service.ErrPasswordMismatch) {
				setFlash(c, "Passwords do not match.")
				c.Redirect(http.StatusFound, "/register")
				return
			}
			serverError(c, "Registration failed", err, nil)
			return
		}
		setFlash(c, "Registration successful! You may now log in.")
		c.Redirect(http.StatusFound, "/login")
	}
}
