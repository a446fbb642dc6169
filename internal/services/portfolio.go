// Package services implements the portfolio content contract on top of a
// persistence backend, a media relocator and the translation overlay store.
// Handlers stay thin; everything observable about create/update/delete
// semantics lives here and behaves identically on both backends.
package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"portfolio-backend/internal/i18n"
	"portfolio-backend/internal/media"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/storage"
)

// BaseLanguage is the language of the canonical field values.
const BaseLanguage = "en"

type PortfolioService struct {
	store     storage.Store
	relocator media.Relocator
	overlay   i18n.Store
}

func NewPortfolioService(store storage.Store, relocator media.Relocator, overlay i18n.Store) *PortfolioService {
	return &PortfolioService{
		store:     store,
		relocator: relocator,
		overlay:   overlay,
	}
}

// ProjectInput carries one create or update request. Empty text fields mean
// "not supplied" on update; I18n maps field name to the raw JSON object
// string submitted in the matching *_i18n form field.
type ProjectInput struct {
	Title        string
	Category     string
	Description  string
	Problem      string
	Solution     string
	Technologies string
	ProjectURL   string
	GithubURL    string

	I18n map[string]string

	MainImage *media.Blob
	Gallery   []*media.Blob
}

// parseI18n decodes every supplied *_i18n payload before anything is
// written; a malformed payload fails the whole request.
func (in *ProjectInput) parseI18n() (map[string]map[string]string, error) {
	maps := make(map[string]map[string]string)
	for _, field := range i18n.Fields {
		parsed, err := i18n.ParseFieldMap(in.I18n[field])
		if err != nil {
			return nil, err
		}
		if parsed != nil {
			maps[field] = parsed
		}
	}
	return maps, nil
}

func missingFields(in ProjectInput) []string {
	missing := make([]string, 0)
	for _, f := range []struct{ name, value string }{
		{"title", in.Title},
		{"category", in.Category},
		{"description", in.Description},
		{"problem", in.Problem},
		{"solution", in.Solution},
		{"technologies", in.Technologies},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// CreateProject validates, relocates media, inserts the canonical record and
// merges any supplied translation maps into the overlay store. The steps are
// independent: a gallery upload or overlay save failing after the row exists
// is a warning, not an error.
func (s *PortfolioService) CreateProject(in ProjectInput) (int64, []string, error) {
	i18nMaps, err := in.parseI18n()
	if err != nil {
		return 0, nil, err
	}
	if missing := missingFields(in); len(missing) > 0 {
		return 0, nil, &storage.ValidationError{Missing: missing}
	}

	var imageURL string
	if in.MainImage != nil {
		imageURL, err = s.relocator.Relocate(in.MainImage, "projects/main")
		if err != nil {
			return 0, nil, err
		}
	}

	// Translations live in the overlay document only; the *_i18n columns
	// remain a read-side fallback for rows written by older deployments.
	record := &models.Project{
		Title:        strings.TrimSpace(in.Title),
		Category:     strings.TrimSpace(in.Category),
		Description:  in.Description,
		Problem:      in.Problem,
		Solution:     in.Solution,
		Technologies: in.Technologies,
		ImageURL:     storage.NullableText(imageURL),
		ProjectURL:   storage.NullableText(strings.TrimSpace(in.ProjectURL)),
		GithubURL:    storage.NullableText(strings.TrimSpace(in.GithubURL)),
	}

	id, err := s.store.InsertProject(record)
	if err != nil {
		return 0, nil, err
	}

	var warnings []string
	for i, blob := range in.Gallery {
		url, err := s.relocator.Relocate(blob, fmt.Sprintf("projects/%d/gallery", id))
		if err != nil {
			logrus.WithError(err).WithField("project_id", id).
				Warn("gallery image upload failed")
			warnings = append(warnings, fmt.Sprintf("gallery image %s: %v", blob.Filename, err))
			continue
		}
		if err := s.store.InsertImage(id, url, i+1); err != nil {
			logrus.WithError(err).WithField("project_id", id).
				Warn("gallery image insert failed")
			warnings = append(warnings, fmt.Sprintf("gallery image %s: %v", blob.Filename, err))
		}
	}

	if len(i18nMaps) > 0 {
		if err := s.applyOverlay(id, i18nMaps); err != nil {
			logrus.WithError(err).WithField("project_id", id).
				Warn("failed to persist project translations")
			warnings = append(warnings, fmt.Sprintf("translations: %v", err))
		}
	}

	return id, warnings, nil
}

// UpdateProject overwrites only the supplied fields; the main image is
// replaced only when a new blob arrives. Translation maps merge per
// (field, language) into the overlay store.
func (s *PortfolioService) UpdateProject(id int64, in ProjectInput) ([]string, error) {
	i18nMaps, err := in.parseI18n()
	if err != nil {
		return nil, err
	}

	existing, err := s.store.GetProject(id)
	if err != nil {
		return nil, err
	}

	applyText(&existing.Title, in.Title)
	applyText(&existing.Category, in.Category)
	applyText(&existing.Description, in.Description)
	applyText(&existing.Problem, in.Problem)
	applyText(&existing.Solution, in.Solution)
	applyText(&existing.Technologies, in.Technologies)
	if strings.TrimSpace(in.ProjectURL) != "" {
		existing.ProjectURL = storage.NullableText(strings.TrimSpace(in.ProjectURL))
	}
	if strings.TrimSpace(in.GithubURL) != "" {
		existing.GithubURL = storage.NullableText(strings.TrimSpace(in.GithubURL))
	}

	if in.MainImage != nil {
		url, err := s.relocator.Relocate(in.MainImage, "projects/main")
		if err != nil {
			return nil, err
		}
		existing.ImageURL = storage.NullableText(url)
	}

	if err := s.store.UpdateProject(existing); err != nil {
		return nil, err
	}

	var warnings []string
	if len(i18nMaps) > 0 {
		if err := s.applyOverlay(id, i18nMaps); err != nil {
			logrus.WithError(err).WithField("project_id", id).
				Warn("failed to persist project translations")
			warnings = append(warnings, fmt.Sprintf("translations: %v", err))
		}
	}
	return warnings, nil
}

func applyText(dst *string, value string) {
	if strings.TrimSpace(value) != "" {
		*dst = value
	}
}

// applyOverlay merges the parsed maps into the overlay document under a
// read-modify-write of the whole document.
func (s *PortfolioService) applyOverlay(projectID int64, maps map[string]map[string]string) error {
	doc := s.overlay.Load()
	pid := strconv.FormatInt(projectID, 10)
	for field, entries := range maps {
		doc.Apply(pid, field, entries)
	}
	return s.overlay.Save(doc)
}

// DeleteProject soft-deletes; repeating the call is not an error.
func (s *PortfolioService) DeleteProject(id int64) error {
	return s.store.SoftDeleteProject(id)
}

// ListProjects returns active projects; when lang is non-empty the four
// translatable fields are resolved for that language.
func (s *PortfolioService) ListProjects(lang string) ([]models.ProjectResponse, error) {
	projects, err := s.store.ListProjects()
	if err != nil {
		return nil, err
	}

	var doc i18n.Document
	if lang != "" {
		doc = s.overlay.Load()
	}

	responses := make([]models.ProjectResponse, 0, len(projects))
	for i := range projects {
		responses = append(responses, s.projectResponse(&projects[i], doc, lang))
	}
	return responses, nil
}

// GetProject returns one project of any status, or storage.ErrNotFound.
func (s *PortfolioService) GetProject(id int64, lang string) (*models.ProjectResponse, error) {
	project, err := s.store.GetProject(id)
	if err != nil {
		return nil, err
	}

	var doc i18n.Document
	if lang != "" {
		doc = s.overlay.Load()
	}
	resp := s.projectResponse(project, doc, lang)
	return &resp, nil
}

func (s *PortfolioService) projectResponse(p *models.Project, doc i18n.Document, lang string) models.ProjectResponse {
	resp := models.NewProjectResponse(p)
	if lang == "" || doc == nil {
		return resp
	}

	pid := strconv.FormatInt(p.ID, 10)
	resolve := func(field, canonical string, m map[string]string) string {
		return i18n.Resolve(doc, pid, field, lang, i18n.FieldSource{
			Canonical: canonical,
			I18n:      m,
			BaseLang:  BaseLanguage,
		}, canonical)
	}
	resp.Title = resolve(i18n.FieldTitle, p.Title, p.TitleI18n)
	resp.Description = resolve(i18n.FieldDescription, p.Description, p.DescriptionI18n)
	resp.Problem = resolve(i18n.FieldProblem, p.Problem, p.ProblemI18n)
	resp.Solution = resolve(i18n.FieldSolution, p.Solution, p.SolutionI18n)
	return resp
}

// AddImages appends gallery images, continuing image_order after the current
// maximum so existing entries never collide. Individual failures are
// warnings; it is an error only when nothing could be stored.
func (s *PortfolioService) AddImages(projectID int64, blobs []*media.Blob) ([]string, []string, error) {
	if _, err := s.store.GetProject(projectID); err != nil {
		return nil, nil, err
	}

	baseOrder, err := s.store.MaxImageOrder(projectID)
	if err != nil {
		return nil, nil, err
	}

	urls := make([]string, 0, len(blobs))
	var warnings []string
	for i, blob := range blobs {
		url, err := s.relocator.Relocate(blob, fmt.Sprintf("projects/%d/gallery", projectID))
		if err != nil {
			logrus.WithError(err).WithField("project_id", projectID).
				Warn("image upload failed")
			warnings = append(warnings, fmt.Sprintf("image %s: %v", blob.Filename, err))
			continue
		}
		if err := s.store.InsertImage(projectID, url, baseOrder+i+1); err != nil {
			logrus.WithError(err).WithField("project_id", projectID).
				Warn("image insert failed")
			warnings = append(warnings, fmt.Sprintf("image %s: %v", blob.Filename, err))
			continue
		}
		urls = append(urls, url)
	}

	if len(blobs) > 0 && len(urls) == 0 {
		return nil, warnings, fmt.Errorf("failed to upload any images")
	}
	return urls, warnings, nil
}

// DeleteImage deletes unconditionally by id.
func (s *PortfolioService) DeleteImage(imageID int64) error {
	return s.store.DeleteImage(imageID)
}

func (s *PortfolioService) ListCategories() ([]models.Category, error) {
	return s.store.ListCategories()
}

// CreateCategory rejects blank names and surfaces storage.ErrConflict on an
// exact duplicate.
func (s *PortfolioService) CreateCategory(name string) (*models.Category, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, storage.NewValidationError("Category name required")
	}
	return s.store.InsertCategory(trimmed)
}

// Translations returns the full overlay document.
func (s *PortfolioService) Translations() i18n.Document {
	return s.overlay.Load()
}
