// Package database applies embedded SQL migrations. Each backend embeds its
// own migrations directory; applied files are tracked in a
// schema_migrations table so startup is idempotent.
package database

import (
	"database/sql"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// Dialect selects placeholder and timestamp syntax for the bookkeeping
// queries.
type Dialect int

const (
	DialectPostgres Dialect = iota
	DialectSQLite
)

type Migrator struct {
	db      *sql.DB
	fs      fs.FS
	dialect Dialect
}

func NewMigrator(db *sql.DB, migrationsFS fs.FS, dialect Dialect) *Migrator {
	return &Migrator{db: db, fs: migrationsFS, dialect: dialect}
}

func (m *Migrator) Run() error {
	if err := m.createMigrationsTable(); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	entries, err := fs.ReadDir(m.fs, ".")
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		applied, err := m.isMigrationApplied(name)
		if err != nil {
			return fmt.Errorf("failed to check migration status: %w", err)
		}
		if applied {
			continue
		}

		migrationSQL, err := fs.ReadFile(m.fs, name)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", name, err)
		}

		logrus.WithField("migration", name).Info("applying migration")

		tx, err := m.db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}

		if _, err := tx.Exec(string(migrationSQL)); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to execute migration %s: %w", name, err)
		}

		if _, err := tx.Exec(m.recordSQL(), name); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %s: %w", name, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %s: %w", name, err)
		}
	}

	return nil
}

func (m *Migrator) createMigrationsTable() error {
	_, err := m.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			name TEXT PRIMARY KEY,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}

func (m *Migrator) recordSQL() string {
	if m.dialect == DialectSQLite {
		return "INSERT INTO schema_migrations (name) VALUES (?)"
	}
	return "INSERT INTO schema_migrations (name) VALUES ($1)"
}

func (m *Migrator) isMigrationApplied(name string) (bool, error) {
	query := "SELECT COUNT(*) FROM schema_migrations WHERE name = $1"
	if m.dialect == DialectSQLite {
		query = "SELECT COUNT(*) FROM schema_migrations WHERE name = ?"
	}
	var count int
	if err := m.db.QueryRow(query, name).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
