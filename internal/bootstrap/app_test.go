package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Juste120/cvPro/internal/extract"
	"github.com/Juste120/cvPro/internal/shared/config"
	"github.com/Juste120/cvPro/internal/shared/telemetry"
)

func testApp(t *testing.T) *App {
	t.Helper()
	gin.SetMode(gin.TestMode)
	telemetry.SetOutput(&bytes.Buffer{})
	t.Cleanup(func() { telemetry.SetOutput(os.Stdout) })

	app, err := Build(config.Config{
		Env:         "dev",
		JWTSecret:   "test-secret",
		JWTTTL:      time.Hour,
		PDFCompress: true,
		DefaultLang: "fr",
		ExportRate:  10,
		ExportBurst: 10,
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func serve(app *App, method, path, token string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	return resp
}

func TestBuildUsesMemoryStoreWithoutDatabase(t *testing.T) {
	app := testApp(t)
	if app.DB != nil {
		t.Fatalf("expected no database")
	}
	if app.ResumesRepo == nil || app.ExportService == nil || app.Router == nil {
		t.Fatalf("app not fully wired: %+v", app)
	}
}

func TestBuildRequiresDatabaseInProduction(t *testing.T) {
	if _, err := Build(config.Config{Env: "production", JWTSecret: "x"}); err == nil {
		t.Fatalf("expected error without DATABASE_URL in production")
	}
}

func TestBuildRequiresSecret(t *testing.T) {
	if _, err := Build(config.Config{Env: "dev"}); err == nil {
		t.Fatalf("expected error without a JWT secret")
	}
}

func TestHealthAndMetricsArePublic(t *testing.T) {
	app := testApp(t)
	if resp := serve(app, http.MethodGet, "/api/v1/health", "", nil); resp.Code != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", resp.Code)
	}
	resp := serve(app, http.MethodGet, "/metrics", "", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "cv_http_requests_total") {
		t.Fatalf("metrics output missing request counter")
	}
}

func TestCreateThenExportPDF(t *testing.T) {
	app := testApp(t)
	token, err := app.Tokens.Sign("user-1", "jane@example.com", "Jane")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	payload := []byte(`{
		"title": "Backend CV",
		"personalInfo": {"fullName": "Jane Roe", "jobTitle": "Engineer", "email": "jane@example.com"},
		"summary": "Builds services.",
		"experiences": [{"position": "Engineer", "company": "Acme", "startDate": "2021-03-01", "isCurrent": true}],
		"interests": ["Chess"]
	}`)
	created := serve(app, http.MethodPost, "/api/v1/resumes", token, payload)
	if created.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", created.Code, created.Body.String())
	}
	var record struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(created.Body.Bytes(), &record); err != nil || record.ID == "" {
		t.Fatalf("create: bad body %s", created.Body.String())
	}

	resp := serve(app, http.MethodGet, "/api/v1/export/pdf/"+record.ID+"?lang=en", token, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("export: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.HasPrefix(resp.Header().Get("Content-Disposition"), `attachment; filename="CV_`) {
		t.Fatalf("unexpected disposition %q", resp.Header().Get("Content-Disposition"))
	}

	report, err := extract.Verify(context.Background(), resp.Body.Bytes(), "Jane Roe")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !report.OK() {
		t.Fatalf("unexpected report %+v", report)
	}

	other, _ := app.Tokens.Sign("user-2", "", "")
	if resp := serve(app, http.MethodGet, "/api/v1/export/pdf/"+record.ID, other, nil); resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for another user, got %d", resp.Code)
	}
}

func TestMeReportsIdentity(t *testing.T) {
	app := testApp(t)
	token, _ := app.Tokens.Sign("user-1", "jane@example.com", "")
	resp := serve(app, http.MethodGet, "/api/v1/me", token, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"userId":"user-1"`) {
		t.Fatalf("unexpected body %s", resp.Body.String())
	}
}
