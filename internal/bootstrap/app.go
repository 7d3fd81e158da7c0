package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Juste120/cvPro/internal/export"
	"github.com/Juste120/cvPro/internal/resumes"
	"github.com/Juste120/cvPro/internal/services/health"
	"github.com/Juste120/cvPro/internal/shared/auth"
	"github.com/Juste120/cvPro/internal/shared/config"
	"github.com/Juste120/cvPro/internal/shared/server"
	"github.com/Juste120/cvPro/internal/shared/server/middleware"
	"github.com/Juste120/cvPro/internal/shared/storage/db"
	"github.com/Juste120/cvPro/internal/shared/telemetry"
	"github.com/Juste120/cvPro/resume/i18n"
	"github.com/Juste120/cvPro/resume/render"
)

// App holds shared dependencies and the wired router.
type App struct {
	Config        config.Config
	Router        *gin.Engine
	DB            *sql.DB
	Tokens        *auth.Tokens
	Catalog       *i18n.Catalog
	ResumesRepo   resumes.Repo
	ResumeService *resumes.Service
	ExportService *export.Service
}

// Build prepares dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	tokens, err := auth.NewTokens(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		return nil, fmt.Errorf("jwt: %w", err)
	}

	catalog, err := i18n.NewCatalog()
	if err != nil {
		return nil, fmt.Errorf("message catalog: %w", err)
	}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var repo resumes.Repo
	if sqlDB != nil {
		repo = &resumes.PGRepo{DB: sqlDB}
	} else {
		repo = resumes.NewMemoryRepo()
	}

	app := &App{
		Config:        cfg,
		DB:            sqlDB,
		Tokens:        tokens,
		Catalog:       catalog,
		ResumesRepo:   repo,
		ResumeService: resumes.NewService(repo),
	}
	app.ExportService = &export.Service{
		Resumes:  repo,
		Composer: render.NewComposer(catalog, render.Options{
			Compress: cfg.PDFCompress,
			Author:   cfg.PDFAuthor,
		}),
		DefaultLocale: i18n.ParseLocale(cfg.DefaultLang),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:        cfg,
		Tokens:        tokens,
		Health:        health.NewService(pinger(sqlDB)),
		ResumeHandler: resumes.NewHandler(app.ResumeService),
		ExportHandler: export.NewHandler(app.ExportService),
		ExportLimiter: middleware.NewLimiter(middleware.Rate{
			PerSecond: cfg.ExportRate,
			Burst:     cfg.ExportBurst,
		}, nil),
	})

	return app, nil
}

// Close releases the database handle, if any.
func (a *App) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

// pinger keeps a nil *sql.DB from becoming a non-nil interface.
func pinger(sqlDB *sql.DB) health.Pinger {
	if sqlDB == nil {
		return nil
	}
	return sqlDB
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if cfg.Env != "production" {
			telemetry.Info("bootstrap.memory_store", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.Options{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.DB.ConnMaxIdleTime,
	})
	if err != nil {
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}
