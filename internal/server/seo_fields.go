package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	seodomain "github.com/granitmemory/catalog/internal/seo/domain"
)

func (s *Server) GetEntitySeo(c *gin.Context) {
	id, err := pathID(c, "entityId")
	if err != nil {
		abortWithError(c, err)
		return
	}

	fields, err := s.seoFieldsSvc.Get(c.Request.Context(), c.Param("entityType"), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": fields})
}

func (s *Server) UpdateEntitySeo(c *gin.Context) {
	id, err := pathID(c, "entityId")
	if err != nil {
		abortWithError(c, err)
		return
	}

	var fields seodomain.Fields
	if err := c.ShouldBindJSON(&fields); err != nil {
		abortWithError(c, fmt.Errorf("%w: %s", errBadRequest, err.Error()))
		return
	}

	updated, err := s.seoFieldsSvc.Update(c.Request.Context(), c.Param("entityType"), id, fields)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "seo fields updated", "data": updated})
}
