package export

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Juste120/cvPro/internal/shared/auth"
	"github.com/Juste120/cvPro/internal/shared/server/middleware"
	"github.com/Juste120/cvPro/internal/shared/server/respond"
	"github.com/Juste120/cvPro/resume/i18n"
	"github.com/Juste120/cvPro/resume/render"
)

func exportRouter(t *testing.T, svc *Service, limiter *middleware.Limiter) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tokens, err := auth.NewTokens("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokens: %v", err)
	}
	router := gin.New()
	api := router.Group("/api/v1")
	api.Use(middleware.Auth(tokens, true))
	var extra []gin.HandlerFunc
	if limiter != nil {
		extra = append(extra, middleware.RateLimit(limiter))
	}
	NewHandler(svc).RegisterRoutes(api, extra...)
	return router
}

func exportRequest(router http.Handler, path, guest string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if guest != "" {
		req.Header.Set("X-Guest-Id", guest)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) respond.ErrorBody {
	t.Helper()
	var body respond.ErrorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, resp.Body.String())
	}
	return body.Error
}

func guestService(t *testing.T, composer Composer) *Service {
	t.Helper()
	svc := newTestService(t, composer)
	repo := seededRepo(t)
	record, _ := repo.GetByID(context.Background(), "user-1", "resume-1")
	record.ID = "guest-resume"
	record.UserID = "guest:abc"
	if err := repo.Create(context.Background(), record); err != nil {
		t.Fatalf("seed guest: %v", err)
	}
	svc.Resumes = repo
	return svc
}

func TestPDFRouteReturnsAttachment(t *testing.T) {
	quietLogs(t)
	router := exportRouter(t, guestService(t, render.NewComposer(i18n.MustCatalog(), render.Options{})), nil)

	resp := exportRequest(router, "/api/v1/export/pdf/guest-resume?lang=en", "abc")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if cd := resp.Header().Get("Content-Disposition"); cd != `attachment; filename="CV_2024-05-01.pdf"` {
		t.Fatalf("unexpected content disposition %q", cd)
	}
	if cc := resp.Header().Get("Cache-Control"); cc != "no-cache, no-store, must-revalidate" {
		t.Fatalf("unexpected cache control %q", cc)
	}
	if string(resp.Body.Bytes()[:5]) != "%PDF-" {
		t.Fatalf("body is not a PDF")
	}
}

func TestPDFRouteStatusCodes(t *testing.T) {
	quietLogs(t)
	cases := []struct {
		name     string
		composer Composer
		path     string
		guest    string
		status   int
		code     string
	}{
		{"missing identity", &recordingComposer{}, "/api/v1/export/pdf/guest-resume", "", http.StatusUnauthorized, "unauthorized"},
		{"unknown resume", &recordingComposer{}, "/api/v1/export/pdf/nope", "abc", http.StatusNotFound, "not_found"},
		{"other owner", &recordingComposer{}, "/api/v1/export/pdf/resume-1", "abc", http.StatusForbidden, "forbidden"},
		{"render failure", &recordingComposer{err: render.ErrExportFailed}, "/api/v1/export/pdf/guest-resume", "abc", http.StatusInternalServerError, "export_failed"},
		{"unexpected failure", &recordingComposer{err: errors.New("boom")}, "/api/v1/export/pdf/guest-resume", "abc", http.StatusInternalServerError, "internal_error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := exportRouter(t, guestService(t, tc.composer), nil)
			resp := exportRequest(router, tc.path, tc.guest)
			if resp.Code != tc.status {
				t.Fatalf("expected %d, got %d: %s", tc.status, resp.Code, resp.Body.String())
			}
			if got := decodeError(t, resp); got.Code != tc.code {
				t.Fatalf("expected code %q, got %q", tc.code, got.Code)
			}
			if resp.Header().Get("Content-Disposition") != "" {
				t.Fatalf("error response must not be an attachment")
			}
		})
	}
}

func TestPDFRoutePassesLanguage(t *testing.T) {
	quietLogs(t)
	composer := &recordingComposer{}
	router := exportRouter(t, guestService(t, composer), nil)

	for _, path := range []string{
		"/api/v1/export/pdf/guest-resume",
		"/api/v1/export/pdf/guest-resume?lang=en",
		"/api/v1/export/pdf/guest-resume?lang=xx",
	} {
		if resp := exportRequest(router, path, "abc"); resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, resp.Code)
		}
	}
	want := []i18n.Locale{i18n.French, i18n.English, i18n.French}
	for i, locale := range want {
		if composer.locales[i] != locale {
			t.Fatalf("call %d: expected %v, got %v", i, locale, composer.locales[i])
		}
	}
}

func TestPDFRouteRateLimited(t *testing.T) {
	quietLogs(t)
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	limiter := middleware.NewLimiter(middleware.Rate{PerSecond: 1, Burst: 1}, func() time.Time { return now })
	router := exportRouter(t, guestService(t, &recordingComposer{}), limiter)

	if resp := exportRequest(router, "/api/v1/export/pdf/guest-resume", "abc"); resp.Code != http.StatusOK {
		t.Fatalf("expected first export to pass, got %d", resp.Code)
	}
	resp := exportRequest(router, "/api/v1/export/pdf/guest-resume", "abc")
	if resp.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", resp.Code)
	}
	if resp.Header().Get("Retry-After") != "1" {
		t.Fatalf("unexpected Retry-After %q", resp.Header().Get("Retry-After"))
	}
	if got := decodeError(t, resp); got.Code != "rate_limited" {
		t.Fatalf("unexpected code %q", got.Code)
	}
}
