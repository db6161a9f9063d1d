package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) PreviewBulkSeo(c *gin.Context) {
	force := c.Query("forceUpdate") == "true"

	preview, err := s.bulkSeoSvc.Preview(c.Request.Context(), c.Param("entityType"), c.Param("categoryKey"), force)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "preview": preview})
}

func (s *Server) UpdateBulkSeo(c *gin.Context) {
	var body struct {
		ForceUpdate bool `json:"forceUpdate"`
	}
	// An empty body means forceUpdate=false.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			abortWithError(c, fmt.Errorf("%w: %s", errBadRequest, err.Error()))
			return
		}
	}

	result, err := s.bulkSeoSvc.Update(c.Request.Context(), c.Param("entityType"), c.Param("categoryKey"), body.ForceUpdate)
	if err != nil {
		abortWithError(c, err)
		return
	}

	resp := gin.H{
		"success": true,
		"stats":   result.Stats,
		"message": fmt.Sprintf("updated %d, skipped %d, errors %d", result.Stats.Updated, result.Stats.Skipped, result.Stats.Errors),
	}
	if len(result.ErrorDetails) > 0 {
		resp["errorDetails"] = result.ErrorDetails
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) CheckBulkSeoTemplate(c *gin.Context) {
	t, err := s.bulkSeoSvc.CheckTemplate(c.Request.Context(), c.Param("entityType"), c.Param("categoryKey"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	if t == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "hasTemplate": false, "template": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "hasTemplate": true, "template": t})
}
