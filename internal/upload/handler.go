package upload

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")

	url, err := h.service.Process(c.Request.Context(), contentType, file)
	if err != nil {
		if errors.Is(err, ErrNotImage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Only images are allowed."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Image upload failed."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
