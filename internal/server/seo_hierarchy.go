package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetSeoHierarchy resolves the effective template for a category. No
// template is a valid answer: the storefront then renders without SEO tags.
func (s *Server) GetSeoHierarchy(c *gin.Context) {
	t, err := s.seoTemplateSvc.GetForCategory(c.Request.Context(), c.Param("entityType"), c.Param("categoryKey"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	if t == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "template": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "template": gin.H{
		"id":             t.ID,
		"seoTitle":       t.SeoTitle,
		"seoDescription": t.SeoDescription,
		"seoKeywords":    t.SeoKeywords,
		"ogImage":        t.OgImage,
	}})
}
