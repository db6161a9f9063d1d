package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	blogdomain "github.com/granitmemory/catalog/internal/blog/domain"
)

func (s *Server) ListBlogs(c *gin.Context) {
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

	blogs, err := s.blogSvc.List(c.Request.Context(), blogdomain.ListFilter{
		Search: c.Query("search"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": blogs, "count": len(blogs)})
}

func (s *Server) GetBlogByID(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		abortWithError(c, err)
		return
	}

	blog, err := s.blogSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": blog})
}

func (s *Server) GetBlogBySlug(c *gin.Context) {
	blog, err := s.blogSvc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": blog})
}

func (s *Server) CreateBlog(c *gin.Context) {
	var req blogdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, fmt.Errorf("%w: %s", errBadRequest, err.Error()))
		return
	}

	blog, err := s.blogSvc.Create(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": blog})
}

func (s *Server) UpdateBlog(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		abortWithError(c, err)
		return
	}

	var req blogdomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, fmt.Errorf("%w: %s", errBadRequest, err.Error()))
		return
	}

	blog, err := s.blogSvc.Update(c.Request.Context(), id, req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": blog})
}

func (s *Server) DeleteBlog(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		abortWithError(c, err)
		return
	}

	if err := s.blogSvc.Delete(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "blog deleted"})
}
