package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/i18n"
	"portfolio-backend/internal/media"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/services"
	"portfolio-backend/internal/storage/sqlite"
)

func apiRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()

	store, err := sqlite.Open(filepath.Join(dir, "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	svc := services.NewPortfolioService(
		store,
		media.NewLocalRelocator(filepath.Join(dir, "uploads"), "/assets/uploads"),
		i18n.NewFileStore(filepath.Join(dir, "projects.json")),
	)

	projects := handlers.NewProjectsHandler(svc)
	categories := handlers.NewCategoriesHandler(svc)
	translations := handlers.NewTranslationsHandler(svc)

	router := gin.New()
	api := router.Group("/api")
	api.GET("/projects", projects.ListProjects)
	api.GET("/projects/:id", projects.GetProject)
	api.POST("/projects", projects.CreateProject)
	api.PUT("/projects/:id", projects.UpdateProject)
	api.DELETE("/projects/:id", projects.DeleteProject)
	api.GET("/categories", categories.ListCategories)
	api.POST("/categories", categories.CreateCategory)
	api.GET("/project-translations", translations.GetTranslations)
	return router
}

func projectForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func validFields() map[string]string {
	return map[string]string{
		"title":        "Foo",
		"category":     "web",
		"description":  "A project",
		"problem":      "The problem",
		"solution":     "The solution",
		"technologies": "Go",
	}
}

func TestCreateProject_HTTP(t *testing.T) {
	router := apiRouter(t)

	body, contentType := projectForm(t, validFields())
	req, _ := http.NewRequest("POST", "/api/projects", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp models.CreateProjectResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Positive(t, resp.ID)
	assert.Equal(t, "Project created successfully", resp.Message)
}

func TestCreateProject_MissingFields(t *testing.T) {
	router := apiRouter(t)

	body, contentType := projectForm(t, map[string]string{"title": "Foo"})
	req, _ := http.NewRequest("POST", "/api/projects", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing required fields")
}

func TestGetProject_LangQuery(t *testing.T) {
	router := apiRouter(t)

	fields := validFields()
	fields["title_i18n"] = `{"id": "Baz"}`
	body, contentType := projectForm(t, fields)
	req, _ := http.NewRequest("POST", "/api/projects", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	req, _ = http.NewRequest("GET", "/api/projects/1?lang=id", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.ProjectResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Baz", resp.Title)
}

func TestGetProject_NotFound(t *testing.T) {
	router := apiRouter(t)

	for _, path := range []string{"/api/projects/42", "/api/projects/abc"} {
		req, _ := http.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Contains(t, w.Body.String(), "Project not found")
	}
}

func TestDeleteProject_HTTP(t *testing.T) {
	router := apiRouter(t)

	body, contentType := projectForm(t, validFields())
	req, _ := http.NewRequest("POST", "/api/projects", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	req, _ = http.NewRequest("DELETE", "/api/projects/1", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req, _ = http.NewRequest("GET", "/api/projects", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestCategories_HTTP(t *testing.T) {
	router := apiRouter(t)

	post := func(name string) *httptest.ResponseRecorder {
		data, _ := json.Marshal(models.CreateCategoryRequest{Name: name})
		req, _ := http.NewRequest("POST", "/api/categories", bytes.NewReader(data))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusCreated, post("web").Code)

	w := post("web")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Category already exists")

	w = post("   ")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Category name required")

	req, _ := http.NewRequest("GET", "/api/categories", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	var categories []models.CategoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	require.Len(t, categories, 1)
	assert.Equal(t, "web", categories[0].Name)
}

func TestTranslations_HTTP(t *testing.T) {
	router := apiRouter(t)

	req, _ := http.NewRequest("GET", "/api/project-translations", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	for _, lang := range i18n.Languages {
		assert.Contains(t, doc, lang)
	}
}
