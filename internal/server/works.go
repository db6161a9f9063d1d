package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	workdomain "github.com/granitmemory/catalog/internal/work/domain"
)

func (s *Server) ListWorks(c *gin.Context) {
	works, err := s.workSvc.List(c.Request.Context(), workdomain.ListFilter{
		ProductID:   c.Query("productId"),
		ProductType: c.Query("productType"),
		Category:    c.Query("category"),
		ActiveOnly:  c.Query("includeInactive") != "true",
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": works})
}

func (s *Server) CreateWork(c *gin.Context) {
	var req workdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, fmt.Errorf("%w: %s", errBadRequest, err.Error()))
		return
	}

	work, err := s.workSvc.Create(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": work})
}

func (s *Server) UpdateWork(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		abortWithError(c, err)
		return
	}

	var req workdomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, fmt.Errorf("%w: %s", errBadRequest, err.Error()))
		return
	}

	work, err := s.workSvc.Update(c.Request.Context(), id, req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": work})
}

func (s *Server) DeleteWork(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		abortWithError(c, err)
		return
	}

	if err := s.workSvc.Delete(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "work deleted"})
}
