package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	catalogdomain "github.com/granitmemory/catalog/internal/catalog/domain"
	"github.com/granitmemory/catalog/internal/category"
)

// errBadRequest marks request decoding problems handled before a service is
// reached.
var errBadRequest = errors.New("bad_request")

func (s *Server) ListCatalog(et category.EntityType) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := listRequestFromQuery(c)
		if err != nil {
			abortWithError(c, err)
			return
		}

		entities, err := s.catalogSvc.List(c.Request.Context(), et, req)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": entities})
	}
}

func (s *Server) ListCatalogByCategory(et category.EntityType) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := listRequestFromQuery(c)
		if err != nil {
			abortWithError(c, err)
			return
		}
		req.CategoryKey = c.Param("category")

		entities, err := s.catalogSvc.List(c.Request.Context(), et, req)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": entities})
	}
}

func (s *Server) GetCatalogBySlug(et category.EntityType) gin.HandlerFunc {
	return func(c *gin.Context) {
		entity, err := s.catalogSvc.GetBySlug(c.Request.Context(), et, "", c.Param("slug"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": entity})
	}
}

func (s *Server) GetCatalogByCategorySlug(et category.EntityType) gin.HandlerFunc {
	return func(c *gin.Context) {
		entity, err := s.catalogSvc.GetBySlug(c.Request.Context(), et, c.Param("category"), c.Param("slug"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": entity})
	}
}

func (s *Server) GetCatalogByID(et category.EntityType) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			abortWithError(c, err)
			return
		}

		entity, err := s.catalogSvc.GetByID(c.Request.Context(), et, c.Query("category"), id)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": entity})
	}
}

func (s *Server) CreateCatalog(et category.EntityType) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req catalogdomain.CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithError(c, fmt.Errorf("%w: %s", errBadRequest, err.Error()))
			return
		}

		entity, err := s.catalogSvc.Create(c.Request.Context(), et, req)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": entity})
	}
}

func (s *Server) UpdateCatalog(et category.EntityType) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			abortWithError(c, err)
			return
		}

		var req catalogdomain.UpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithError(c, fmt.Errorf("%w: %s", errBadRequest, err.Error()))
			return
		}
		req.ID = id
		req.CategoryKey = c.Query("category")

		entity, err := s.catalogSvc.Update(c.Request.Context(), et, req)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": entity})
	}
}

func (s *Server) DeleteCatalog(et category.EntityType) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			abortWithError(c, err)
			return
		}

		entity, err := s.catalogSvc.Delete(c.Request.Context(), et, catalogdomain.DeleteRequest{
			ID:          id,
			CategoryKey: c.Query("category"),
			Slug:        c.Query("slug"),
		})
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "deleted", "data": entity})
	}
}

func listRequestFromQuery(c *gin.Context) (catalogdomain.ListRequest, error) {
	req := catalogdomain.ListRequest{
		CategoryKey: c.Query("category"),
		Search:      c.Query("search"),
	}

	var err error
	if req.MinPrice, err = floatQuery(c, "minPrice"); err != nil {
		return req, err
	}
	if req.MaxPrice, err = floatQuery(c, "maxPrice"); err != nil {
		return req, err
	}
	if req.Hit, err = boolQuery(c, "hit"); err != nil {
		return req, err
	}
	if req.Popular, err = boolQuery(c, "popular"); err != nil {
		return req, err
	}
	if req.Limit, err = intQuery(c, "limit"); err != nil {
		return req, err
	}
	if req.Offset, err = intQuery(c, "offset"); err != nil {
		return req, err
	}
	return req, nil
}

func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s", errBadRequest, name)
	}
	return id, nil
}

func floatQuery(c *gin.Context, name string) (*float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid %s", errBadRequest, name)
	}
	return &v, nil
}

func boolQuery(c *gin.Context, name string) (*bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v := raw == "true" || raw == "1"
	return &v, nil
}

func intQuery(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s", errBadRequest, name)
	}
	return v, nil
}
