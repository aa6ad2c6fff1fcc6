package api

import (
	"net/http"

	"alumni_portal/internal/service"

	"github.com/gin-gonic/gin"
)

func filtersFromQuery(c *gin.Context) (service.Filters, error) {
	return service.ParseFilters(c.Query("search"), c.Query("year"), c.Query("department"), c.Query("industry"))
}

// DirectoryHandler lists alumni matching the query filters
func DirectoryHandler(directory *service.DirectoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		filters, err := filtersFromQuery(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		alumni, err := directory.Search(c.Request.Context(), filters)
		if err != nil {
			serverError(c, "Failed to search alumni", err, nil)
			return
		}
		data := pageData(c)
		data["alumni"] = alumni
		c.JSON(http.StatusOK, data)
	}
}

// ExportHandler streams the filtered directory as an xlsx attachment
func ExportHandler(directory *service.DirectoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		filters, err := filtersFromQuery(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		data, err := directory.Export(c.Request.Context(), filters)
		if err != nil {
			serverError(c, "Failed to export alumni", err, nil)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+service.ExportFilename+`"`)
		c.Data(http.StatusOK, service.ExportMIME, data)
	}
}
