package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	pageseodomain "github.com/granitmemory/catalog/internal/pageseo/domain"
)

func (s *Server) ListPageSeo(c *gin.Context) {
	rows, err := s.pageSeoSvc.List(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": rows})
}

// GetPageSeoBySlug answers for both the admin and the storefront lookup. A
// page without metadata is data:null, not a 404, so the frontend can fall
// back to its defaults.
func (s *Server) GetPageSeoBySlug(c *gin.Context) {
	row, err := s.pageSeoSvc.GetBySlug(c.Request.Context(), c.Param("slug"))
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

// GetPublicPageSeo is the storefront variant: pages excluded from indexing
// render as if they had no metadata.
func (s *Server) GetPublicPageSeo(c *gin.Context) {
	row, err := s.pageSeoSvc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	if row == nil || !row.IsIndexed {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": row})
}

func (s *Server) CreatePageSeo(c *gin.Context) {
	var req pageseodomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, fmt.Errorf("%w: %s", errBadRequest, err.Error()))
		return
	}

	row, err := s.pageSeoSvc.Create(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": row})
}

func (s *Server) UpdatePageSeo(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		abortWithError(c, err)
		return
	}

	var req pageseodomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, fmt.Errorf("%w: %s", errBadRequest, err.Error()))
		return
	}

	row, err := s.pageSeoSvc.Update(c.Request.Context(), id, req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": row})
}

func (s *Server) DeletePageSeo(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		abortWithError(c, err)
		return
	}

	if err := s.pageSeoSvc.Delete(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "page seo deleted"})
}
