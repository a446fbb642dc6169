package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/i18n"
	"portfolio-backend/internal/media"
	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/services"
	"portfolio-backend/internal/storage"
	"portfolio-backend/internal/storage/postgres"
	"portfolio-backend/internal/storage/sqlite"
	"portfolio-backend/internal/supabase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	var (
		store     storage.Store
		relocator media.Relocator
		overlay   i18n.Store
		pinger    handlers.Pinger
	)

	fileStore := i18n.NewFileStore(cfg.TranslationsFilePath)

	switch cfg.StorageBackend {
	case config.BackendSupabase:
		pgStore, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			logrus.WithError(err).Fatal("failed to open postgres store")
		}
		defer pgStore.Close()
		store = pgStore

		storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabaseServiceRoleKey, cfg.SupabaseStorageBucket)
		if err != nil {
			logrus.WithError(err).Fatal("failed to initialize storage client")
		}
		relocator = media.NewObjectRelocator(storageClient)
		overlay = i18n.NewObjectStore(storageClient, cfg.TranslationsObjectPath, fileStore)

		supabaseClient, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceRoleKey)
		if err != nil {
			logrus.WithError(err).Fatal("failed to initialize supabase client")
		}
		pinger = supabaseClient
		if err := supabaseClient.TestConnection(); err != nil {
			logrus.WithError(err).Warn("could not connect to Supabase, check credentials")
		}

	case config.BackendSQLite:
		sqliteStore, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			logrus.WithError(err).Fatal("failed to open sqlite store")
		}
		defer sqliteStore.Close()
		store = sqliteStore
		relocator = media.NewLocalRelocator(cfg.UploadDir, "/assets/uploads")
		overlay = fileStore
		pinger = sqliteStore
	}

	svc := services.NewPortfolioService(store, relocator, overlay)

	authHandler := handlers.NewAuthHandler(cfg)
	projectsHandler := handlers.NewProjectsHandler(svc)
	imagesHandler := handlers.NewImagesHandler(svc)
	categoriesHandler := handlers.NewCategoriesHandler(svc)
	translationsHandler := handlers.NewTranslationsHandler(svc)
	healthHandler := handlers.NewHealthHandler(pinger, cfg.StorageBackend)

	router := gin.Default()
	router.Use(cors.Default())

	if cfg.StorageBackend == config.BackendSQLite {
		router.Static("/assets/uploads", cfg.UploadDir)
	}

	api := router.Group("/api")
	{
		api.GET("/health", healthHandler.Health)
		api.POST("/admin/login", authHandler.Login)

		api.GET("/projects", projectsHandler.ListProjects)
		api.GET("/projects/:id", projectsHandler.GetProject)
		api.GET("/categories", categoriesHandler.ListCategories)
		api.GET("/project-translations", translationsHandler.GetTranslations)

		admin := api.Group("")
		admin.Use(middleware.AdminAuth(cfg.AdminTokenSecret))
		{
			admin.POST("/projects", projectsHandler.CreateProject)
			admin.PUT("/projects/:id", projectsHandler.UpdateProject)
			admin.DELETE("/projects/:id", projectsHandler.DeleteProject)
			admin.POST("/projects/:id/images", imagesHandler.AddImages)
			admin.DELETE("/projects/:id/images/:imageId", imagesHandler.DeleteImage)
			admin.POST("/categories", categoriesHandler.CreateCategory)
		}
	}

	logrus.WithFields(logrus.Fields{
		"port":    cfg.Port,
		"backend": cfg.StorageBackend,
	}).Info("server starting")

	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logrus.WithError(err).Fatal("failed to start server")
	}
}
