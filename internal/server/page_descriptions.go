package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	pagedescriptiondomain "github.com/granitmemory/catalog/internal/pagedescription/domain"
)

func (s *Server) ListPageDescriptions(c *gin.Context) {
	rows, err := s.pageDescriptionSvc.List(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": rows})
}

// GetPageDescriptionBySlug answers for both the admin and the storefront
// lookup. A page without text blocks is data:null, not a 404.
func (s *Server) GetPageDescriptionBySlug(c *gin.Context) {
	row, err := s.pageDescriptionSvc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	if row == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": row})
}

func (s *Server) CreatePageDescription(c *gin.Context) {
	var req pagedescriptiondomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, fmt.Errorf("%w: %s", errBadRequest, err.Error()))
		return
	}

	row, err := s.pageDescriptionSvc.Create(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": row})
}

func (s *Server) UpdatePageDescription(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		abortWithError(c, err)
		return
	}

	var req pagedescriptiondomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, fmt.Errorf("%w: %s", errBadRequest, err.Error()))
		return
	}

	row, err := s.pageDescriptionSvc.Update(c.Request.Context(), id, req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": row})
}

func (s *Server) DeletePageDescription(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		abortWithError(c, err)
		return
	}

	if err := s.pageDescriptionSvc.Delete(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "page description deleted"})
}
