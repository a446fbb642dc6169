package models

import (
	"database/sql"
	"time"
)

// Project statuses. Deleting a project flips Status to deleted; rows are
// never physically removed so gallery images and translation overlays stay
// addressable by id.
const (
	StatusActive  = "active"
	StatusDeleted = "deleted"
)

type Project struct {
	ID           int64
	Title        string
	Category     string
	Description  string
	Problem      string
	Solution     string
	Technologies string
	ImageURL     sql.NullString
	ProjectURL   sql.NullString
	GithubURL    sql.NullString
	Status       string

	// Per-field language maps persisted as JSON columns alongside the
	// canonical values (title_i18n etc). Keys lower-cased, values trimmed.
	TitleI18n       map[string]string
	DescriptionI18n map[string]string
	ProblemI18n     map[string]string
	SolutionI18n    map[string]string

	CreatedAt time.Time
	UpdatedAt time.Time

	Images []ProjectImage
}

type ProjectImage struct {
	ID         int64
	ProjectID  int64
	ImageURL   string
	ImageOrder int
	CreatedAt  time.Time
}

type Category struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
