package api

import (
	"net/http"

	"alumni_portal/internal/middleware"
	"alumni_portal/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// FlashCookie carries a one-shot message across a redirect
const FlashCookie = "flash"

func setFlash(c *gin.Context, msg string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(FlashCookie, msg, 60, "/", "", false, true)
}

// popFlash returns the pending flash message and clears it
func popFlash(c *gin.Context) string {
	msg, err := c.Cookie(FlashCookie) // gin unescapes the value
	if err != nil || msg == "" {
		return ""
	}
	c.SetCookie(FlashCookie, "", -1, "/", "", false, true)
	return msg
}

// pic mirrors the avatar shortcut every page passes to its view
func pic(id *session.Identity) string {
	if id == nil {
		return ""
	}
	return id.ProfilePic
}

// pageData is the common view model for session-gated pages
func pageData(c *gin.Context) gin.H {
	id := middleware.CurrentIdentity(c)
	return gin.H{"user": id, "pic": pic(id)}
}

// serverError logs err with context and answers 500
func serverError(c *gin.Context, msg string, err error, fields logrus.Fields) {
	if fields == nil {
		fields = logrus.Fields{}
	}
	fields["error"] = err.Error()
	fields["path"] = c.FullPath()
	logrus.WithFields(fields).Error(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
