// Package postgres is the cloud-relational persistence backend, pointed at a
// Supabase (or any) PostgreSQL instance through a direct connection.
package postgres

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/lib/pq"

	"portfolio-backend/internal/database"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/storage"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const uniqueViolation = "23505"

type Store struct {
	db *sql.DB
}

// Open connects and applies embedded migrations.
func Open(connectionString string) (*Store, error) {
	db, err := sql.Open("postgres", connectionString)
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
	if err := database.NewMigrator(db, sub, database.DialectPostgres).Run(); err != nil {
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

const projectColumns = `id, title, category, description, problem, solution, technologies,
	image_url, project_url, github_url, status,
	title_i18n, description_i18n, problem_i18n, solution_i18n,
	created_at, updated_at`

func scanProject(row interface{ Scan(...any) error }) (*models.Project, error) {
	var p models.Project
	var titleI18n, descI18n, probI18n, solI18n sql.NullString
	err := row.Scan(
		&p.ID, &p.Title, &p.Category, &p.Description, &p.Problem, &p.Solution,
		&p.Technologies, &p.ImageURL, &p.ProjectURL, &p.GithubURL, &p.Status,
		&titleI18n, &descI18n, &probI18n, &solI18n,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.TitleI18n = storage.DecodeI18nColumn(titleI18n)
	p.DescriptionI18n = storage.DecodeI18nColumn(descI18n)
	p.ProblemI18n = storage.DecodeI18nColumn(probI18n)
	p.SolutionI18n = storage.DecodeI18nColumn(solI18n)
	return &p, nil
}

func (s *Store) ListProjects() ([]models.Project, error) {
	rows, err := s.db.Query(fmt.Sprintf(`
		SELECT %s FROM projects
		WHERE status = $1
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
		SELECT %s FROM projects WHERE id = $1
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
	var id int64
	err := s.db.QueryRow(`
		INSERT INTO projects (
			title, category, description, problem, solution, technologies,
			image_url, project_url, github_url, status,
			title_i18n, description_i18n, problem_i18n, solution_i18n
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`,
		p.Title, p.Category, p.Description, p.Problem, p.Solution, p.Technologies,
		p.ImageURL, p.ProjectURL, p.GithubURL, models.StatusActive,
		storage.EncodeI18nColumn(p.TitleI18n), storage.EncodeI18nColumn(p.DescriptionI18n),
		storage.EncodeI18nColumn(p.ProblemI18n), storage.EncodeI18nColumn(p.SolutionI18n),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert project: %w", err)
	}
	return id, nil
}

func (s *Store) UpdateProject(p *models.Project) error {
	res, err := s.db.Exec(`
		UPDATE projects
		SET title = $1, category = $2, description = $3, problem = $4, solution = $5,
			technologies = $6, image_url = $7, project_url = $8, github_url = $9,
			title_i18n = $10, description_i18n = $11, problem_i18n = $12, solution_i18n = $13,
			updated_at = NOW()
		WHERE id = $14
	`,
		p.Title, p.Category, p.Description, p.Problem, p.Solution,
		p.Technologies, p.ImageURL, p.ProjectURL, p.GithubURL,
		storage.EncodeI18nColumn(p.TitleI18n), storage.EncodeI18nColumn(p.DescriptionI18n),
		storage.EncodeI18nColumn(p.ProblemI18n), storage.EncodeI18nColumn(p.SolutionI18n),
		p.ID,
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
		UPDATE projects SET status = $1, updated_at = NOW() WHERE id = $2
	`, models.StatusDeleted, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

func (s *Store) listImages(projectID int64) ([]models.ProjectImage, error) {
	rows, err := s.db.Query(`
		SELECT id, project_id, image_url, image_order, created_at
		FROM project_images
		WHERE project_id = $1
		ORDER BY image_order ASC, id ASC
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	defer rows.Close()

	images := make([]models.ProjectImage, 0)
	for rows.Next() {
		var img models.ProjectImage
		if err := rows.Scan(&img.ID, &img.ProjectID, &img.ImageURL, &img.ImageOrder, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan image: %w", err)
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

func (s *Store) MaxImageOrder(projectID int64) (int, error) {
	var max int
	err := s.db.QueryRow(`
		SELECT COALESCE(MAX(image_order), 0) FROM project_images WHERE project_id = $1
	`, projectID).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("failed to get max image order: %w", err)
	}
	return max, nil
}

func (s *Store) InsertImage(projectID int64, imageURL string, order int) error {
	_, err := s.db.Exec(`
		INSERT INTO project_images (project_id, image_url, image_order)
		VALUES ($1, $2, $3)
	`, projectID, imageURL, order)
	if err != nil {
		return fmt.Errorf("failed to insert image: %w", err)
	}
	return nil
}

func (s *Store) DeleteImage(imageID int64) error {
	_, err := s.db.Exec(`DELETE FROM project_images WHERE id = $1`, imageID)
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
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (s *Store) InsertCategory(name string) (*models.Category, error) {
	var c models.Category
	err := s.db.QueryRow(`
		INSERT INTO categories (name) VALUES ($1)
		RETURNING id, name, created_at
	`, name).Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, storage.ErrConflict
		}
		return nil, fmt.Errorf("failed to insert category: %w", err)
	}
	return &c, nil
}
