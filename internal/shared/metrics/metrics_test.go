package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestExportCounters(t *testing.T) {
	started := testutil.ToFloat64(exportStartedTotal)
	failed := testutil.ToFloat64(exportFailedTotal)

	IncExportStarted()
	IncExportFailed()
	ObserveExportDuration(-time.Second)

	if got := testutil.ToFloat64(exportStartedTotal); got != started+1 {
		t.Fatalf("started = %v, want %v", got, started+1)
	}
	if got := testutil.ToFloat64(exportFailedTotal); got != failed+1 {
		t.Fatalf("failed = %v, want %v", got, failed+1)
	}
}

func TestHandlerExposesExportMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	IncExportCompleted()
	ObserveExportDuration(20 * time.Millisecond)
	ObserveRequest(http.MethodGet, "/api/v1/export/pdf/:id", http.StatusOK)

	router := gin.New()
	router.GET("/metrics", Handler())

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body := resp.Body.String()
	for _, name := range []string{
		"cv_export_completed_total",
		"cv_export_duration_seconds_bucket",
		`cv_http_requests_total{method="GET",route="/api/v1/export/pdf/:id",status="200"}`,
	} {
		if !strings.Contains(body, name) {
			t.Fatalf("expected %s in metrics output", name)
		}
	}
}
