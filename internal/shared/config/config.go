package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Juste120/cvPro/internal/shared/telemetry"
)

const devJWTSecret = "dev-secret"

// Config holds application configuration.
type Config struct {
	Env             string
	Port            string
	LogLevel        string
	CORSAllowOrigin []string
	DatabaseURL     string
	DB              DBConfig
	JWTSecret       string
	JWTTTL          time.Duration
	AllowGuest      bool
	PDFCompress     bool
	PDFAuthor       string
	DefaultLang     string
	ExportRate      float64
	ExportBurst     int
}

// DBConfig tunes the connection pool. Zero values keep the driver defaults in db.Connect.
type DBConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience; real env wins.
	for _, path := range []string{".env", "cmd/.env"} {
		_ = godotenv.Load(path)
	}

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")
	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))

	if env == "production" {
		if dbURL == "" {
			telemetry.Warn("config.missing", map[string]any{"key": "DATABASE_URL"})
		}
		if secret == "" {
			telemetry.Warn("config.missing", map[string]any{"key": "JWT_SECRET"})
		}
	}
	if secret == "" && env != "production" {
		secret = devJWTSecret
	}

	return Config{
		Env:             env,
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		DatabaseURL:     dbURL,
		DB: DBConfig{
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 0),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 0),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 0),
			ConnMaxIdleTime: getDuration("DB_CONN_MAX_IDLE_TIME", 0),
		},
		JWTSecret:   secret,
		JWTTTL:      getDuration("JWT_TTL", 24*time.Hour),
		AllowGuest:  getBool("ALLOW_GUEST", env != "production"),
		PDFCompress: getBool("PDF_COMPRESS", true),
		PDFAuthor:   getEnv("PDF_AUTHOR", ""),
		DefaultLang: getEnv("DEFAULT_LANG", "fr"),
		ExportRate:  getFloat("EXPORT_RATE_PER_SEC", 2),
		ExportBurst: getInt("EXPORT_BURST", 5),
	}
}

func getEnv(key, def string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return def
}

func getInt(key string, def int) int {
	if n, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return n
	}
	return def
}

func getFloat(key string, def float64) float64 {
	if f, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil {
		return f
	}
	return def
}

func getBool(key string, def bool) bool {
	if b, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return b
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return d
	}
	return def
}

func splitAndTrim(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
