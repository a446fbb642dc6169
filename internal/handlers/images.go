package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/services"
)

type ImagesHandler struct {
	svc *services.PortfolioService
}

func NewImagesHandler(svc *services.PortfolioService) *ImagesHandler {
	return &ImagesHandler{svc: svc}
}

// AddImages appends gallery images to an existing project, continuing after
// the current highest image_order.
func (h *ImagesHandler) AddImages(c *gin.Context) {
	projectID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Project not found"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to parse multipart form", Message: err.Error()})
		return
	}

	headers := form.File["images"]
	if len(headers) > maxBatchImages {
		headers = headers[:maxBatchImages]
	}
	blobs, err := blobsFromHeaders(headers)
	if err != nil {
		writeError(c, err)
		return
	}

	urls, warnings, err := h.svc.AddImages(projectID, blobs)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.UploadImagesResponse{
		Message:  "Images uploaded successfully",
		Images:   urls,
		Warnings: warnings,
	})
}

// DeleteImage removes one gallery image unconditionally.
func (h *ImagesHandler) DeleteImage(c *gin.Context) {
	imageID, err := strconv.ParseInt(c.Param("imageId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Image not found"})
		return
	}

	if err := h.svc.DeleteImage(imageID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Image deleted successfully"})
}
