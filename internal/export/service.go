package export

import (
	"context"
	"time"

	"github.com/Juste120/cvPro/internal/shared/metrics"
	"github.com/Juste120/cvPro/internal/shared/telemetry"
	"github.com/Juste120/cvPro/internal/shared/util"
	"github.com/Juste120/cvPro/resume/i18n"
	"github.com/Juste120/cvPro/resume/model"
)

const pdfContentType = "application/pdf"

// Lookup fetches a record the user owns.
type Lookup interface {
	GetByID(ctx context.Context, userID, resumeID string) (model.ResumeRecord, error)
}

// Composer renders a record to document bytes.
type Composer interface {
	Compose(record model.ResumeRecord, locale i18n.Locale) ([]byte, error)
}

// Document is a rendered export ready to be sent as a download.
type Document struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Service loads, renders and names CV exports.
type Service struct {
	Resumes       Lookup
	Composer      Composer
	DefaultLocale i18n.Locale
	Now           func() time.Time
}

// Export renders the user's resume as a PDF. An empty lang selects the
// default locale; an unrecognized one selects French.
func (s *Service) Export(ctx context.Context, userID, resumeID, lang string) (Document, error) {
	record, err := s.Resumes.GetByID(ctx, userID, resumeID)
	if err != nil {
		return Document{}, err
	}
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}

	locale := s.DefaultLocale
	if lang != "" {
		locale = i18n.ParseLocale(lang)
	}

	metrics.IncExportStarted()
	telemetry.Info("export.start", map[string]any{
		"resume_id": resumeID,
		"user_id":   userID,
		"locale":    locale.String(),
	})

	start := time.Now()
	data, err := s.Composer.Compose(record, locale)
	elapsed := time.Since(start)
	metrics.ObserveExportDuration(elapsed)
	if err != nil {
		metrics.IncExportFailed()
		return Document{}, err
	}
	metrics.IncExportCompleted()
	telemetry.Info("export.complete", map[string]any{
		"resume_id":   resumeID,
		"locale":      locale.String(),
		"bytes":       len(data),
		"sha256":      util.Digest(data),
		"duration_ms": float64(elapsed.Microseconds()) / 1000.0,
	})

	return Document{
		Filename:    Filename(s.now()),
		ContentType: pdfContentType,
		Data:        data,
	}, nil
}

// Filename names a download after the export date, e.g. CV_2024-05-01.pdf.
func Filename(at time.Time) string {
	return "CV_" + at.Format("2006-01-02") + ".pdf"
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}
