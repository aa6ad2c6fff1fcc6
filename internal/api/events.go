package api

import (
	"errors"
	"net/http"

	"alumni_portal/internal/service"

	"github.com/gin-gonic/gin"
)

// EventsHandler lists upcoming events
func EventsHandler(events *service.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		upcoming, err := events.ListUpcoming(c.Request.Context())
		if err != nil {
			serverError(c, "Failed to fetch events", err, nil)
			return
		}
		data := pageData(c)
		data["events"] = upcoming
		data["now"] = events.Now().In(service.IST)
		c.JSON(http.StatusOK, data)
	}
}

// CreateEventHandler stores an event submitted from the events page
func CreateEventHandler(events *service.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.EventInput
		if err := c.ShouldBind(&req); err != nil {
			c.String(http.StatusBadRequest, "Missing event fields")
			return
		}
		if _, err := events.Create(c.Request.Context(), req); err != nil {
			if errors.Is(err, service.ErrInvalidEventWindow) || errors.Is(err, service.ErrInvalidTimeFormat) {
				c.String(http.StatusBadRequest, "Event timings are invalid!")
				return
			}
			serverError(c, "Failed to create event", err, nil)
			return
		}
		c.Redirect(http.StatusFound, "/events")
	}
}
