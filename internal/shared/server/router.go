package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Juste120/cvPro/internal/export"
	"github.com/Juste120/cvPro/internal/resumes"
	"github.com/Juste120/cvPro/internal/services/health"
	"github.com/Juste120/cvPro/internal/shared/config"
	"github.com/Juste120/cvPro/internal/shared/metrics"
	"github.com/Juste120/cvPro/internal/shared/server/middleware"
	"github.com/Juste120/cvPro/internal/shared/server/respond"
)

// RouterDeps carries the handlers mounted under /api/v1.
type RouterDeps struct {
	Config        config.Config
	Tokens        middleware.Verifier
	Health        *health.Service
	ResumeHandler *resumes.Handler
	ExportHandler *export.Handler
	ExportLimiter *middleware.Limiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		payload, ok := deps.Health.Status(c.Request.Context())
		status := http.StatusOK
		if !ok {
			status = http.StatusServiceUnavailable
		}
		respond.JSON(c, status, payload)
	})

	private := api.Group("")
	private.Use(middleware.Auth(deps.Tokens, cfg.AllowGuest))
	registerMeRoutes(private)
	if deps.ResumeHandler != nil {
		deps.ResumeHandler.RegisterRoutes(private)
	}
	if deps.ExportHandler != nil {
		var extra []gin.HandlerFunc
		if deps.ExportLimiter != nil {
			extra = append(extra, middleware.RateLimit(deps.ExportLimiter))
		}
		deps.ExportHandler.RegisterRoutes(private, extra...)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
