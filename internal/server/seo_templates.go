package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	seotemplatedomain "github.com/granitmemory/catalog/internal/seotemplate/domain"
)

func (s *Server) ListSeoTemplates(c *gin.Context) {
	templates, err := s.seoTemplateSvc.List(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": templates})
}

func (s *Server) GetSeoTemplateByCategoryKey(c *gin.Context) {
	t, err := s.seoTemplateSvc.GetByCategoryKey(c.Request.Context(), c.Param("categoryKey"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	if t == nil {
		abortWithError(c, seotemplatedomain.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": t})
}

func (s *Server) CreateSeoTemplate(c *gin.Context) {
	var req seotemplatedomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, fmt.Errorf("%w: %s", errBadRequest, err.Error()))
		return
	}

	t, err := s.seoTemplateSvc.Create(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": t})
}

func (s *Server) UpdateSeoTemplate(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		abortWithError(c, err)
		return
	}

	var req seotemplatedomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, fmt.Errorf("%w: %s", errBadRequest, err.Error()))
		return
	}

	t, err := s.seoTemplateSvc.Update(c.Request.Context(), id, req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": t})
}

func (s *Server) DeleteSeoTemplate(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		abortWithError(c, err)
		return
	}

	if err := s.seoTemplateSvc.Delete(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "template deleted"})
}
