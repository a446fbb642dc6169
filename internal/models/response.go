package models

import "time"

type ProjectResponse struct {
	ID           int64             `json:"id"`
	Title        string            `json:"title"`
	Category     string            `json:"category"`
	Description  string            `json:"description"`
	Problem      string            `json:"problem"`
	Solution     string            `json:"solution"`
	Technologies string            `json:"technologies"`
	ImageURL     *string           `json:"image_url"`
	ProjectURL   *string           `json:"project_url"`
	GithubURL    *string           `json:"github_url"`
	Status       string            `json:"status"`
	TitleI18n    map[string]string `json:"title_i18n,omitempty"`
	DescI18n     map[string]string `json:"description_i18n,omitempty"`
	ProblemI18n  map[string]string `json:"problem_i18n,omitempty"`
	SolutionI18n map[string]string `json:"solution_i18n,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	Images       []ImageResponse   `json:"images"`
}

type ImageResponse struct {
	ID         int64     `json:"id"`
	ProjectID  int64     `json:"project_id"`
	ImageURL   string    `json:"image_url"`
	ImageOrder int       `json:"image_order"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateProjectResponse struct {
	ID       int64    `json:"id"`
	Message  string   `json:"message"`
	Warnings []string `json:"warnings,omitempty"`
}

type MessageResponse struct {
	Message  string   `json:"message"`
	Warnings []string `json:"warnings,omitempty"`
}

type UploadImagesResponse struct {
	Message  string   `json:"message"`
	Images   []string `json:"images"`
	Warnings []string `json:"warnings,omitempty"`
}

type CategoryResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateCategoryResponse struct {
	Message string `json:"message"`
	Name    string `json:"name"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// NewProjectResponse converts a stored record into its API shape.
func NewProjectResponse(p *Project) ProjectResponse {
	resp := ProjectResponse{
		ID:           p.ID,
		Title:        p.Title,
		Category:     p.Category,
		Description:  p.Description,
		Problem:      p.Problem,
		Solution:     p.Solution,
		Technologies: p.Technologies,
		ImageURL:     nullableString(p.ImageURL.Valid, p.ImageURL.String),
		ProjectURL:   nullableString(p.ProjectURL.Valid, p.ProjectURL.String),
		GithubURL:    nullableString(p.GithubURL.Valid, p.GithubURL.String),
		Status:       p.Status,
		TitleI18n:    p.TitleI18n,
		DescI18n:     p.DescriptionI18n,
		ProblemI18n:  p.ProblemI18n,
		SolutionI18n: p.SolutionI18n,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		Images:       make([]ImageResponse, 0, len(p.Images)),
	}
	for _, img := range p.Images {
		resp.Images = append(resp.Images, ImageResponse{
			ID:         img.ID,
			ProjectID:  img.ProjectID,
			ImageURL:   img.ImageURL,
			ImageOrder: img.ImageOrder,
			CreatedAt:  img.CreatedAt,
		})
	}
	return resp
}

func nullableString(valid bool, s string) *string {
	if !valid {
		return nil
	}
	return &s
}
