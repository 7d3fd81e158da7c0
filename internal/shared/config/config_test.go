package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"ENV", "PORT", "JWT_SECRET", "PDF_COMPRESS", "DEFAULT_LANG", "ALLOW_GUEST", "EXPORT_BURST"} {
		t.Setenv(key, "")
	}
	chdir(t, t.TempDir())

	cfg := Load()
	if cfg.Env != "dev" || cfg.Port != "8080" {
		t.Fatalf("unexpected env/port %q %q", cfg.Env, cfg.Port)
	}
	if cfg.JWTSecret != devJWTSecret {
		t.Fatalf("expected dev secret outside production")
	}
	if !cfg.PDFCompress || cfg.DefaultLang != "fr" || !cfg.AllowGuest {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.JWTTTL != 24*time.Hour || cfg.ExportBurst != 5 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadProductionOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("ENV", "prod")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ALLOW_GUEST", "")
	t.Setenv("PDF_COMPRESS", "false")
	t.Setenv("CORS_ALLOW_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("DB_MAX_OPEN_CONNS", "12")
	t.Setenv("DB_CONN_MAX_LIFETIME", "5m")

	cfg := Load()
	if cfg.Env != "production" {
		t.Fatalf("expected production, got %q", cfg.Env)
	}
	if cfg.JWTSecret != "" || cfg.AllowGuest {
		t.Fatalf("production must not fall back to dev identity settings: %+v", cfg)
	}
	if cfg.PDFCompress {
		t.Fatalf("expected compression disabled")
	}
	if len(cfg.CORSAllowOrigin) != 2 || cfg.CORSAllowOrigin[1] != "https://b.example" {
		t.Fatalf("unexpected origins %v", cfg.CORSAllowOrigin)
	}
	if cfg.DB.MaxOpenConns != 12 || cfg.DB.ConnMaxLifetime != 5*time.Minute {
		t.Fatalf("unexpected db config %+v", cfg.DB)
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("PDF_AUTHOR", "")
	os.Unsetenv("PDF_AUTHOR")
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("PDF_AUTHOR=\"cvPro team\"\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("PDF_AUTHOR") })

	if got := Load().PDFAuthor; got != "cvPro team" {
		t.Fatalf("expected author from .env, got %q", got)
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})
}
