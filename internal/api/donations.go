package api

import (
	"net/http"

	"alumni_portal/internal/service"

	"github.com/gin-gonic/gin"
)

// DonationSuccessHandler records the donation reported by the payment widget
func DonationSuccessHandler(donations *service.DonationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.DonationInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request"})
			return
		}
		if _, err := donations.Record(c.Request.Context(), req); err != nil {
			serverError(c, "Failed to record donation", err, nil)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
