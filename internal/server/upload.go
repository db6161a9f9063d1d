package server

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

const maxUploadSize = 5 << 20 // 5MB

var uploadFolders = map[string]struct{}{
	"accessories": {},
	"fences":      {},
	"landscape":   {},
	"promo":       {},
	"products":    {},
	"blog":        {},
	"campaigns":   {},
	"works":       {},
	"monuments":   {},
	"pages":       {},
}

var uploadExtensions = map[string]struct{}{
	".webp": {},
	".png":  {},
	".jpg":  {},
	".jpeg": {},
}

// UploadFile stores a catalog image under the media root. Filenames are
// snowflake ids so concurrent uploads of the same original name never clash.
func (s *Server) UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		abortWithError(c, fmt.Errorf("%w: no file provided", errBadRequest))
		return
	}
	if file.Size > maxUploadSize {
		abortWithError(c, fmt.Errorf("%w: file exceeds 5MB", errBadRequest))
		return
	}

	folder := c.PostForm("folder")
	if _, ok := uploadFolders[folder]; !ok {
		abortWithError(c, fmt.Errorf("%w: invalid folder parameter", errBadRequest))
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := uploadExtensions[ext]; !ok {
		abortWithError(c, fmt.Errorf("%w: only .webp, .png, .jpg files are allowed", errBadRequest))
		return
	}

	dir := filepath.Join(s.cfg.MediaRoot, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		abortWithError(c, err)
		return
	}

	name := s.genID.Generate().String() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
		"filename": name,
		"path":     fmt.Sprintf("/static/%s/%s", folder, name),
	}})
}
