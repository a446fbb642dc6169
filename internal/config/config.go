package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Storage backends selectable via STORAGE_BACKEND.
const (
	BackendSQLite   = "sqlite"
	BackendSupabase = "supabase"
)

const defaultTokenSecret = "change-me"

type Config struct {
	// Server
	Port        string
	Environment string
	BaseURL     string

	// Persistence
	StorageBackend string
	SQLitePath     string
	DatabaseURL    string

	// Local uploads
	UploadDir string

	// Supabase
	SupabaseURL            string
	SupabaseKey            string
	SupabaseServiceRoleKey string
	SupabaseStorageBucket  string

	// Translation overlay
	TranslationsFilePath   string
	TranslationsObjectPath string

	// Admin session
	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string
	AdminTokenSecret  string
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "3000"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:3000"),

		StorageBackend: getEnv("STORAGE_BACKEND", BackendSQLite),
		SQLitePath:     getEnv("SQLITE_PATH", "portfolio.db"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),

		UploadDir: getEnv("UPLOAD_DIR", "assets/uploads"),

		SupabaseURL:            getEnv("SUPABASE_URL", ""),
		SupabaseKey:            getEnv("SUPABASE_KEY", ""),
		SupabaseServiceRoleKey: getEnv("SUPABASE_SERVICE_ROLE_KEY", ""),
		SupabaseStorageBucket:  getEnv("SUPABASE_STORAGE_BUCKET", "portfolio-images"),

		TranslationsFilePath:   getEnv("PROJECT_I18N_PATH", "assets/i18n/projects.json"),
		TranslationsObjectPath: getEnv("PROJECT_I18N_OBJECT_PATH", "meta/projects.json"),

		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", "admin123"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		AdminTokenSecret:  getEnv("ADMIN_TOKEN_SECRET", defaultTokenSecret),
	}

	if cfg.SupabaseServiceRoleKey == "" {
		cfg.SupabaseServiceRoleKey = cfg.SupabaseKey
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendSQLite:
	case BackendSupabase:
		if c.SupabaseURL == "" {
			return fmt.Errorf("SUPABASE_URL is required for the supabase backend")
		}
		if c.SupabaseServiceRoleKey == "" {
			return fmt.Errorf("SUPABASE_SERVICE_ROLE_KEY or SUPABASE_KEY is required for the supabase backend")
		}
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the supabase backend")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q (want %q or %q)", c.StorageBackend, BackendSQLite, BackendSupabase)
	}

	if c.Environment == "production" && c.AdminTokenSecret == defaultTokenSecret {
		return fmt.Errorf("ADMIN_TOKEN_SECRET must be set in production")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
