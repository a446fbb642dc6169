package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/i18n"
	"portfolio-backend/internal/media"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/storage"
)

// writeError maps service errors onto the API's status codes: validation and
// conflicts are 400, missing records 404, anything else surfaces as 500 with
// the underlying message (this is an internal admin tool, not a security
// boundary).
func writeError(c *gin.Context, err error) {
	var validationErr *storage.ValidationError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: validationErr.Error()})
	case errors.Is(err, i18n.ErrInvalidPayload):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, media.ErrUnsupportedType), errors.Is(err, media.ErrTooLarge):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Project not found"})
	case errors.Is(err, storage.ErrConflict):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Category already exists"})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
	}
}
