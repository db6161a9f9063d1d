package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	blogdomain "github.com/granitmemory/catalog/internal/blog/domain"
	campaigndomain "github.com/granitmemory/catalog/internal/campaign/domain"
	catalogdomain "github.com/granitmemory/catalog/internal/catalog/domain"
	"github.com/granitmemory/catalog/internal/category"
	epitaphdomain "github.com/granitmemory/catalog/internal/epitaph/domain"
	pagedescriptiondomain "github.com/granitmemory/catalog/internal/pagedescription/domain"
	pageseodomain "github.com/granitmemory/catalog/internal/pageseo/domain"
	seodomain "github.com/granitmemory/catalog/internal/seo/domain"
	seotemplatedomain "github.com/granitmemory/catalog/internal/seotemplate/domain"
	workdomain "github.com/granitmemory/catalog/internal/work/domain"
)

// ErrorHandlingMiddleware funnels service errors into the wire envelope.
// Handlers record errors with c.Error and abort; the middleware decides the
// status code so sentinel-to-status mapping lives in one place.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, message := classify(err)
		c.JSON(status, gin.H{"success": false, "error": message})
	}
}

func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func classify(err error) (int, string) {
	switch {
	case isValidationError(err):
		return http.StatusBadRequest, err.Error()
	case isNotFoundError(err):
		return http.StatusNotFound, err.Error()
	case isConflictError(err):
		return http.StatusConflict, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, category.ErrUnknownEntityType) ||
		errors.Is(err, category.ErrUnknownCategory) ||
		errors.Is(err, catalogdomain.ErrInvalidName) ||
		errors.Is(err, catalogdomain.ErrSlugMismatch) ||
		errors.Is(err, catalogdomain.ErrNoFields) ||
		errors.Is(err, seotemplatedomain.ErrMissingFields) ||
		errors.Is(err, seotemplatedomain.ErrTitleTooLong) ||
		errors.Is(err, seotemplatedomain.ErrDescriptionTooLong) ||
		errors.Is(err, pageseodomain.ErrMissingFields) ||
		errors.Is(err, pagedescriptiondomain.ErrMissingFields) ||
		errors.Is(err, pageseodomain.ErrTitleTooLong) ||
		errors.Is(err, pageseodomain.ErrDescriptionTooLong) ||
		errors.Is(err, seodomain.ErrTitleTooLong) ||
		errors.Is(err, seodomain.ErrDescriptionTooLong) ||
		errors.Is(err, blogdomain.ErrMissingTitle) ||
		errors.Is(err, campaigndomain.ErrMissingTitle) ||
		errors.Is(err, workdomain.ErrMissingFields) ||
		errors.Is(err, epitaphdomain.ErrMissingText) ||
		errors.Is(err, errBadRequest)
}

func isNotFoundError(err error) bool {
	return errors.Is(err, catalogdomain.ErrNotFound) ||
		errors.Is(err, seotemplatedomain.ErrNotFound) ||
		errors.Is(err, pageseodomain.ErrNotFound) ||
		errors.Is(err, pagedescriptiondomain.ErrNotFound) ||
		errors.Is(err, blogdomain.ErrNotFound) ||
		errors.Is(err, campaigndomain.ErrNotFound) ||
		errors.Is(err, workdomain.ErrNotFound) ||
		errors.Is(err, epitaphdomain.ErrNotFound) ||
		errors.Is(err, seodomain.ErrEntityNotFound)
}

func isConflictError(err error) bool {
	return errors.Is(err, catalogdomain.ErrSlugTaken) ||
		errors.Is(err, seotemplatedomain.ErrDuplicateKey) ||
		errors.Is(err, pageseodomain.ErrDuplicateSlug) ||
		errors.Is(err, pagedescriptiondomain.ErrDuplicateSlug) ||
		errors.Is(err, blogdomain.ErrSlugTaken) ||
		errors.Is(err, campaigndomain.ErrSlugTaken)
}
