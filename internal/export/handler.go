package export

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Juste120/cvPro/internal/resumes"
	"github.com/Juste120/cvPro/internal/shared/server/middleware"
	"github.com/Juste120/cvPro/internal/shared/server/respond"
	"github.com/Juste120/cvPro/resume/render"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches export routes to the router group. Extra handlers,
// such as a rate limiter, run before the export itself.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, extra ...gin.HandlerFunc) {
	handlers := append(append([]gin.HandlerFunc{}, extra...), h.pdf)
	rg.GET("/export/pdf/:id", handlers...)
}

func (h *Handler) pdf(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	resumeID := c.Param("id")
	c.Set("resumeId", resumeID)

	doc, err := h.Svc.Export(c.Request.Context(), userID, resumeID, c.Query("lang"))
	if err != nil {
		switch {
		case errors.Is(err, resumes.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		case errors.Is(err, resumes.ErrForbidden):
			respond.Error(c, http.StatusForbidden, "forbidden", "access to this resume is denied", nil)
		case errors.Is(err, resumes.ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, render.ErrExportFailed):
			respond.Error(c, http.StatusInternalServerError, "export_failed", "failed to generate the PDF", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to export resume", nil)
		}
		return
	}

	respond.Attachment(c, doc.Filename, doc.ContentType, doc.Data)
}
