package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio/internal/api/middleware"
	"portfolio/internal/config"
)

var allowedImageExtensions = map[string]struct{}{
	".jpeg": {},
	".jpg":  {},
	".png":  {},
	".webp": {},
	".gif":  {},
}

var allowedImageMIMETypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/webp": {},
	"image/gif":  {},
}

// UploadHandler writes admin image uploads to the local upload directory,
// which the router serves statically under /uploads.
type UploadHandler struct {
	dir      string
	maxBytes int64
	logger   *slog.Logger
}

// NewUploadHandler constructs the upload handler.
func NewUploadHandler(cfg config.UploadConfig, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		dir:      cfg.Dir,
		maxBytes: cfg.MaxBytes,
		logger:   logger,
	}
}

// UploadImage accepts a single "image" form file, enforces the size cap and
// the image extension/MIME allow-list, and stores it under a
// collision-resistant timestamped filename. Returns the relative URL that the
// admin client writes back into an image_url field.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	logger := middleware.LoggerFromContext(c)

	file, err := c.FormFile("image")
	if err != nil {
		BadRequest(c, "no file uploaded")
		return
	}

	if file.Size > h.maxBytes {
		BadRequest(c, fmt.Sprintf("file exceeds the %d byte limit", h.maxBytes))
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := allowedImageExtensions[ext]; !ok {
		BadRequest(c, "only image files are allowed")
		return
	}

	contentType := strings.ToLower(strings.TrimSpace(file.Header.Get("Content-Type")))
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = strings.TrimSpace(contentType[:i])
	}
	if _, ok := allowedImageMIMETypes[contentType]; !ok {
		BadRequest(c, "only image files are allowed")
		return
	}

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		logger.Error("create upload dir", slog.Any("error", err))
		Internal(c, "failed to upload image")
		return
	}

	// Timestamp plus a random suffix keeps concurrent uploads from colliding.
	filename := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)
	dest := filepath.Join(h.dir, filename)

	if err := c.SaveUploadedFile(file, dest); err != nil {
		logger.Error("save uploaded file", slog.Any("error", err))
		Internal(c, "failed to upload image")
		return
	}

	logger.Info("image uploaded", slog.String("filename", filename), slog.Int64("size", file.Size))
	c.JSON(http.StatusOK, gin.H{"success": true, "url": "/uploads/" + filename})
}
