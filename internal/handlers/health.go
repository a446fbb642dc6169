package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/models"
)

// Pinger is the connection probe a health check runs against the active
// backend.
type Pinger interface {
	Ping() error
}

type HealthHandler struct {
	pinger   Pinger
	database string
}

func NewHealthHandler(pinger Pinger, database string) *HealthHandler {
	return &HealthHandler{pinger: pinger, database: database}
}

// Health reports whether the active persistence backend is reachable.
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.pinger.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "ok",
		Database:  h.database,
		Timestamp: time.Now().UTC(),
	})
}
