// Package storage defines the persistence contract shared by the SQLite and
// Postgres backends. Both implementations must be observably identical:
// callers pick one at startup and never branch on it again.
package storage

import "portfolio-backend/internal/models"

// Store is the record-level persistence backend for projects, gallery
// images and categories. Higher-level concerns (field validation, media
// relocation, translation overlays) live in the service layer.
type Store interface {
	// ListProjects returns active projects ordered by created_at descending,
	// each with its gallery ordered by image_order ascending.
	ListProjects() ([]models.Project, error)
	// GetProject returns one project of any status with its gallery, or
	// ErrNotFound.
	GetProject(id int64) (*models.Project, error)
	InsertProject(p *models.Project) (int64, error)
	// UpdateProject overwrites the mutable columns of an existing row and
	// refreshes updated_at. ErrNotFound when the id does not exist.
	UpdateProject(p *models.Project) error
	// SoftDeleteProject flips status to deleted and refreshes updated_at.
	// Idempotent: deleting an already-deleted id succeeds silently.
	SoftDeleteProject(id int64) error

	// MaxImageOrder returns the highest image_order for a project, 0 when the
	// gallery is empty.
	MaxImageOrder(projectID int64) (int, error)
	InsertImage(projectID int64, imageURL string, order int) error
	// DeleteImage deletes unconditionally by id; deleting a missing id is not
	// an error.
	DeleteImage(imageID int64) error

	// ListCategories returns all categories ordered by name ascending.
	ListCategories() ([]models.Category, error)
	// InsertCategory fails with ErrConflict on an exact duplicate name.
	InsertCategory(name string) (*models.Category, error)

	Ping() error
	Close() error
}
