package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	campaigndomain "github.com/granitmemory/catalog/internal/campaign/domain"
)

func (s *Server) ListCampaigns(c *gin.Context) {
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

	campaigns, err := s.campaignSvc.List(c.Request.Context(), campaigndomain.ListFilter{
		Search: c.Query("search"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": campaigns, "count": len(campaigns)})
}

func (s *Server) GetCampaignByID(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		abortWithError(c, err)
		return
	}

	campaign, err := s.campaignSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": campaign})
}

func (s *Server) GetCampaignBySlug(c *gin.Context) {
	campaign, err := s.campaignSvc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": campaign})
}

func (s *Server) CreateCampaign(c *gin.Context) {
	var req campaigndomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, fmt.Errorf("%w: %s", errBadRequest, err.Error()))
		return
	}

	campaign, err := s.campaignSvc.Create(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": campaign})
}

func (s *Server) UpdateCampaign(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		abortWithError(c, err)
		return
	}

	var req campaigndomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, fmt.Errorf("%w: %s", errBadRequest, err.Error()))
		return
	}

	campaign, err := s.campaignSvc.Update(c.Request.Context(), id, req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": campaign})
}

func (s *Server) DeleteCampaign(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		abortWithError(c, err)
		return
	}

	if err := s.campaignSvc.Delete(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "campaign deleted"})
}
