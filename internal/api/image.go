package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutridiary/backend/internal/service"
)

// ImageHandler serves food image uploads.
type ImageHandler struct {
	images *service.ImageService
}

// NewImageHandler creates a new ImageHandler instance.
func NewImageHandler(images *service.ImageService) *ImageHandler {
	return &ImageHandler{images: images}
}

// RegisterRoutes wires the image endpoints onto the router group.
func (h *ImageHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/images", h.Upload)
}

// Upload stores a multipart image and returns its public URL. Responds 503
// when no image storage is configured.
func (h *ImageHandler) Upload(c *gin.Context) {
	if h.images == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage is not configured"})
		return
	}
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image file"})
		return
	}
	defer file.Close()

	url, err := h.images.Upload(c.Request.Context(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}
