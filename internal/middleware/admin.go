package middleware

import (
	"net/http" // HTTP status codes

	"alumni_portal/internal/service" // Admin lookups

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// AdminOnlyMiddleware checks the admin flag from the database on each request.
// The session copy of the flag is not trusted since it can be stale.
func AdminOnlyMiddleware(db *gorm.DB) gin.HandlerFunc {
	admins := service.NewAdminService(db)
	return func(c *gin.Context) {
		id := CurrentIdentity(c) // Get identity from context
		// Check if identity exists in context
		if id == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		isAdmin, err := admins.IsAdmin(c.Request.Context(), id.ID) // Fetch flag from database
		if err != nil {
			// If admin not found or any error, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		// Check if the role flag is set
		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
