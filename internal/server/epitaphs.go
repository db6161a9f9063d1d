package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	epitaphdomain "github.com/granitmemory/catalog/internal/epitaph/domain"
)

func (s *Server) ListEpitaphs(c *gin.Context) {
	limit, err := intQuery(c, "limit")
	if err != nil {
		abortWithError(c, err)
		return
	}
	offset, err := intQuery(c, "offset")
	if err != nil {
		abortWithError(c, err)
		return
	}

	epitaphs, err := s.epitaphSvc.List(c.Request.Context(), epitaphdomain.ListFilter{
		Search: c.Query("search"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": epitaphs})
}

type epitaphRequest struct {
	Text string `json:"text"`
}

func (s *Server) CreateEpitaph(c *gin.Context) {
	var req epitaphRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, fmt.Errorf("%w: %s", errBadRequest, err.Error()))
		return
	}

	epitaph, err := s.epitaphSvc.Create(c.Request.Context(), req.Text)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": epitaph})
}

func (s *Server) UpdateEpitaph(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		abortWithError(c, err)
		return
	}

	var req epitaphRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, fmt.Errorf("%w: %s", errBadRequest, err.Error()))
		return
	}

	epitaph, err := s.epitaphSvc.Update(c.Request.Context(), id, req.Text)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": epitaph})
}

func (s *Server) DeleteEpitaph(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		abortWithError(c, err)
		return
	}

	if err := s.epitaphSvc.Delete(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "epitaph deleted"})
}
