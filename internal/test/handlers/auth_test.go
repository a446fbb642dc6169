package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/models"
)

func loginRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		AdminUsername:    "admin",
		AdminPassword:    "secret",
		AdminTokenSecret: "test-secret-key-for-jwt-signing-must-be-long-enough",
	}
	router := gin.New()
	router.POST("/api/admin/login", handlers.NewAuthHandler(cfg).Login)
	return router
}

func postLogin(t *testing.T, router *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req, _ := http.NewRequest("POST", "/api/admin/login", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLogin_Success(t *testing.T) {
	router := loginRouter()

	w := postLogin(t, router, models.LoginRequest{Username: "admin", Password: "secret"})

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	// The issued token passes verification against the same secret.
	assert.NoError(t, auth.VerifyAdminToken("test-secret-key-for-jwt-signing-must-be-long-enough", resp.Token))
}

func TestLogin_WrongPassword(t *testing.T) {
	router := loginRouter()

	w := postLogin(t, router, models.LoginRequest{Username: "admin", Password: "nope"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestLogin_MissingFields(t *testing.T) {
	router := loginRouter()

	w := postLogin(t, router, map[string]string{"username": "admin"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
