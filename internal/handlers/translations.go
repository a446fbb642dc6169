package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/services"
)

type TranslationsHandler struct {
	svc *services.PortfolioService
}

func NewTranslationsHandler(svc *services.PortfolioService) *TranslationsHandler {
	return &TranslationsHandler{svc: svc}
}

// GetTranslations returns the full overlay document
// (language -> project id -> field -> text). The admin panel edits against
// this snapshot, so it must never be cached.
func (h *TranslationsHandler) GetTranslations(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, h.svc.Translations())
}
