package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/models"
)

type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// Login checks the configured admin credentials and issues a signed session
// token valid for two weeks.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "username and password are required"})
		return
	}

	ok := auth.CheckCredentials(req.Username, req.Password,
		h.cfg.AdminUsername, h.cfg.AdminPassword, h.cfg.AdminPasswordHash)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid credentials"})
		return
	}

	token, err := auth.NewAdminToken(h.cfg.AdminTokenSecret, auth.TokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to issue token", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{Success: true, Token: token})
}
