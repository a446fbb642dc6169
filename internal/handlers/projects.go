package handlers

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/i18n"
	"portfolio-backend/internal/media"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/services"
)

// Form part limits, matching the admin panel's upload widgets.
const (
	maxGalleryImages = 5
	maxBatchImages   = 10
)

type ProjectsHandler struct {
	svc *services.PortfolioService
}

func NewProjectsHandler(svc *services.PortfolioService) *ProjectsHandler {
	return &ProjectsHandler{svc: svc}
}

// ListProjects returns active projects, newest first, each with its ordered
// gallery. An optional lang query resolves display text for that language.
func (h *ProjectsHandler) ListProjects(c *gin.Context) {
	projects, err := h.svc.ListProjects(c.Query("lang"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetProject returns a single project of any status.
func (h *ProjectsHandler) GetProject(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Project not found"})
		return
	}

	project, err := h.svc.GetProject(id, c.Query("lang"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func projectInputFromForm(c *gin.Context) (services.ProjectInput, error) {
	in := services.ProjectInput{
		Title:        c.PostForm("title"),
		Category:     c.PostForm("category"),
		Description:  c.PostForm("description"),
		Problem:      c.PostForm("problem"),
		Solution:     c.PostForm("solution"),
		Technologies: c.PostForm("technologies"),
		ProjectURL:   c.PostForm("project_url"),
		GithubURL:    c.PostForm("github_url"),
		I18n: map[string]string{
			i18n.FieldTitle:       c.PostForm("title_i18n"),
			i18n.FieldDescription: c.PostForm("description_i18n"),
			i18n.FieldProblem:     c.PostForm("problem_i18n"),
			i18n.FieldSolution:    c.PostForm("solution_i18n"),
		},
	}

	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		blob, err := media.FromFileHeader(fh)
		if err != nil {
			return in, err
		}
		in.MainImage = blob
	}

	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return in, nil
	}
	gallery := form.File["gallery_images"]
	if len(gallery) > maxGalleryImages {
		gallery = gallery[:maxGalleryImages]
	}
	in.Gallery, err = blobsFromHeaders(gallery)
	return in, err
}

func blobsFromHeaders(headers []*multipart.FileHeader) ([]*media.Blob, error) {
	blobs := make([]*media.Blob, 0, len(headers))
	for _, fh := range headers {
		blob, err := media.FromFileHeader(fh)
		if err != nil {
			return nil, err
		}
		blobs = append(blobs, blob)
	}
	return blobs, nil
}

// CreateProject handles the admin multipart create form.
func (h *ProjectsHandler) CreateProject(c *gin.Context) {
	in, err := projectInputFromForm(c)
	if err != nil {
		writeError(c, err)
		return
	}

	id, warnings, err := h.svc.CreateProject(in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.CreateProjectResponse{
		ID:       id,
		Message:  "Project created successfully",
		Warnings: warnings,
	})
}

// UpdateProject overwrites only the supplied fields.
func (h *ProjectsHandler) UpdateProject(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Project not found"})
		return
	}

	in, err := projectInputFromForm(c)
	if err != nil {
		writeError(c, err)
		return
	}

	warnings, err := h.svc.UpdateProject(id, in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{
		Message:  "Project updated successfully",
		Warnings: warnings,
	})
}

// DeleteProject soft-deletes; repeated deletes succeed silently.
func (h *ProjectsHandler) DeleteProject(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Project not found"})
		return
	}

	if err := h.svc.DeleteProject(id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Project deleted successfully"})
}
