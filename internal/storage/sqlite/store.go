// Package sqlite is the embedded-file persistence backend, for deployments
// without a hosted database. Timestamps are stored as unix milliseconds.
package sqlite

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"portfolio-backend/internal/database"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/storage"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type Store struct {
	db *sql.DB
}

// Open opens the database file and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	sub, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		db.Close()
		return nil, err
	}
	if err := database.NewMigrator(db, sub, database.DialectSQLite).Run(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Ping() error {
	return s.db.Ping()
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

const projectColumns = `id, title, category, description, problem, solution, technologies,
	image_url, project_url, github_url, status,
	title_i18n, description_i18n, problem_i18n, solution_i18n,
	created_at, updated_at`

func scanProject(row interface{ Scan(...any) error }) (*models.Project, error) {
	var p models.Project
	var titleI18n, descI18n, probI18n, solI18n sql.NullString
	var createdAt, updatedAt int64
	err := row.Scan(
		&p.ID, &p.Title, &p.Category, &p.Description, &p.Problem, &p.Solution,
		&p.Technologies, &p.ImageURL, &p.ProjectURL, &p.GithubURL, &p.Status,
		&titleI18n, &descI18n, &probI18n, &solI18n,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.TitleI18n = storage.DecodeI18nColumn(titleI18n)
	p.DescriptionI18n = storage.DecodeI18nColumn(descI18n)
	p.ProblemI18n = storage.DecodeI18nColumn(probI18n)
	p.SolutionI18n = storage.DecodeI18nColumn(solI18n)
	p.CreatedAt = fromMillis(createdAt)
	p.UpdatedAt = fromMillis(updatedAt)
	return &p, nil
}

func (s *Store) ListProjects() ([]models.Project, error) {
	rows, err := s.db.Query(fmt.Sprintf(`
		SELECT %s FROM projects
		WHERE status = ?
		ORDER BY created_at DESC, id DESC
	`, projectColumns), models.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]models.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range projects {
		images, err := s.listImages(projects[i].ID)
		if err != nil {
			return nil, err
		}
		projects[i].Images = images
	}
	return projects, nil
}

func (s *Store) GetProject(id int64) (*models.Project, error) {
	p, err := scanProject(s.db.QueryRow(fmt.Sprintf(`
		SELECT %s FROM projects WHERE id = ?
	`, projectColumns), id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	images, err := s.listImages(id)
	if err != nil {
		return nil, err
	}
	p.Images = images
	return p, nil
}

func (s *Store) InsertProject(p *models.Project) (int64, error) {
	now := toMillis(time.Now())
	res, err := s.db.Exec(`
		INSERT INTO projects (
			title, category, description, problem, solution, technologies,
			image_url, project_url, github_url, status,
			title_i18n, description_i18n, problem_i18n, solution_i18n,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		p.Title, p.Category, p.Description, p.Problem, p.Solution, p.Technologies,
		p.ImageURL, p.ProjectURL, p.GithubURL, models.StatusActive,
		storage.EncodeI18nColumn(p.TitleI18n), storage.EncodeI18nColumn(p.DescriptionI18n),
		storage.EncodeI18nColumn(p.ProblemI18n), storage.EncodeI18nColumn(p.SolutionI18n),
		now, now,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert project: %w", err)
	}
	return res.LastInsertId()
}

func (s *Store) UpdateProject(p *models.Project) error {
	res, err := s.db.Exec(`
		UPDATE projects
		SET title = ?, category = ?, description = ?, problem = ?, solution = ?,
			technologies = ?, image_url = ?, project_url = ?, github_url = ?,
			title_i18n = ?, description_i18n = ?, problem_i18n = ?, solution_i18n = ?,
			updated_at = ?
		WHERE id = ?
	`,
		p.Title, p.Category, p.Description, p.Problem, p.Solution,
		p.Technologies, p.ImageURL, p.ProjectURL, p.GithubURL,
		storage.EncodeI18nColumn(p.TitleI18n), storage.EncodeI18nColumn(p.DescriptionI18n),
		storage.EncodeI18nColumn(p.ProblemI18n), storage.EncodeI18nColumn(p.SolutionI18n),
		toMillis(time.Now()), p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Store) SoftDeleteProject(id int64) error {
	_, err := s.db.Exec(`
		UPDATE projects SET status = ?, updated_at = ? WHERE id = ?
	`, models.StatusDeleted, toMillis(time.Now()), id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

func (s *Store) listImages(projectID int64) ([]models.ProjectImage, error) {
	rows, err := s.db.Query(`
		SELECT id, project_id, image_url, image_order, created_at
		FROM project_images
		WHERE project_id = ?
		ORDER BY image_order ASC, id ASC
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	defer rows.Close()

	images := make([]models.ProjectImage, 0)
	for rows.Next() {
		var img models.ProjectImage
		var createdAt int64
		if err := rows.Scan(&img.ID, &img.ProjectID, &img.ImageURL, &img.ImageOrder, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan image: %w", err)
		}
		img.CreatedAt = fromMillis(createdAt)
		images = append(images, img)
	}
	return images, rows.Err()
}

func (s *Store) MaxImageOrder(projectID int64) (int, error) {
	var max int
	err := s.db.QueryRow(`
		SELECT COALESCE(MAX(image_order), 0) FROM project_images WHERE project_id = ?
	`, projectID).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("failed to get max image order: %w", err)
	}
	return max, nil
}

func (s *Store) InsertImage(projectID int64, imageURL string, order int) error {
	_, err := s.db.Exec(`
		INSERT INTO project_images (project_id, image_url, image_order, created_at)
		VALUES (?, ?, ?, ?)
	`, projectID, imageURL, order, toMillis(time.Now()))
	if err != nil {
		return fmt.Errorf("failed to insert image: %w", err)
	}
	return nil
}

func (s *Store) DeleteImage(imageID int64) error {
	_, err := s.db.Exec(`DELETE FROM project_images WHERE id = ?`, imageID)
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

func (s *Store) ListCategories() ([]models.Category, error) {
	rows, err := s.db.Query(`
		SELECT id, name, created_at FROM categories ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		var c models.Category
		var createdAt int64
		if err := rows.Scan(&c.ID, &c.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		c.CreatedAt = fromMillis(createdAt)
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (s *Store) InsertCategory(name string) (*models.Category, error) {
	now := time.Now()
	res, err := s.db.Exec(`
		INSERT INTO categories (name, created_at) VALUES (?, ?)
	`, name, toMillis(now))
	if err != nil {
		var sqliteErr *msqlite.Error
		if errors.As(err, &sqliteErr) {
			switch sqliteErr.Code() {
			case sqlite3lib.SQLITE_CONSTRAINT_UNIQUE, sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY:
				return nil, storage.ErrConflict
			}
		}
		return nil, fmt.Errorf("failed to insert category: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &models.Category{ID: id, Name: name, CreatedAt: fromMillis(toMillis(now))}, nil
}
