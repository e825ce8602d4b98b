package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ameer12348/wacky-commerce-backend/services"
)

// uploadField is the form field name clients send the image under.
const uploadField = "uploadedFile"

type ImageHandler struct {
	images *services.ImageService
}

func NewImageHandler(images *services.ImageService) *ImageHandler {
	return &ImageHandler{images: images}
}

// UploadMainImage accepts a single file and responds with the stored
// filename (or URL, when Cloudinary is configured).
func (h *ImageHandler) UploadMainImage(c *gin.Context) {
	file, err := c.FormFile(uploadField)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No files were uploaded"})
		return
	}

	filename, err := h.images.StoreMainImage(file)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"filename": filename})
}
