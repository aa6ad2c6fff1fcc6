package api

import (
	"net/http"

	"alumni_portal/internal/middleware"
	"alumni_portal/internal/service"

	"github.com/gin-gonic/gin"
)

// HomeHandler renders the landing page, with or without a session
func HomeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user":  middleware.CurrentIdentity(c),
			"flash": popFlash(c),
		})
	}
}

// DashboardHandler shows all events and the headline counts
func DashboardHandler(events *service.EventService, directory *service.DirectoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		totalAlumni, err := directory.Count(ctx)
		if err != nil {
			serverError(c, "Failed to count alumni", err, nil)
			return
		}
		totalEvents, err := events.Count(ctx)
		if err != nil {
			serverError(c, "Failed to count events", err, nil)
			return
		}
		all, err := events.ListAll(ctx)
		if err != nil {
			serverError(c, "Failed to fetch events", err, nil)
			return
		}
		data := pageData(c)
		data["events"] = all
		data["total_events"] = totalEvents
		data["total_alumni"] = totalAlumni
		c.JSON(http.StatusOK, data)
	}
}

// StaticPageHandler renders pages that carry nothing but the session user
func StaticPageHandler(page string) gin.HandlerFunc {
	return func(c *gin.Context) {
		data := pageData(c)
		data["page"] = page
		c.JSON(http.StatusOK, data)
	}
}
