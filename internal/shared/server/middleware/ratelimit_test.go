package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestLimiterRefills(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	l := NewLimiter(Rate{PerSecond: 1, Burst: 2}, func() time.Time { return now })

	for i := 0; i < 2; i++ {
		if ok, _ := l.Allow("u"); !ok {
			t.Fatalf("request %d should pass", i+1)
		}
	}
	ok, wait := l.Allow("u")
	if ok {
		t.Fatalf("third request should be limited")
	}
	if wait != time.Second {
		t.Fatalf("expected 1s wait, got %v", wait)
	}
	if ok, _ := l.Allow("other"); !ok {
		t.Fatalf("keys must not share buckets")
	}

	now = now.Add(time.Second)
	if ok, _ := l.Allow("u"); !ok {
		t.Fatalf("bucket should refill after a second")
	}
}

func TestLimiterDisabled(t *testing.T) {
	l := NewLimiter(Rate{}, nil)
	for i := 0; i < 100; i++ {
		if ok, _ := l.Allow("u"); !ok {
			t.Fatalf("disabled limiter rejected request %d", i+1)
		}
	}
}

func TestRateLimit429IncludesRetryAfter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewLimiter(Rate{PerSecond: 1, Burst: 1}, func() time.Time { return now })

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(userIDKey, "user-1")
		c.Next()
	})
	r.GET("/api/v1/export/pdf/:id", RateLimit(limiter), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req1 := httptest.NewRequest(http.MethodGet, "/api/v1/export/pdf/a", nil)
	resp1 := httptest.NewRecorder()
	r.ServeHTTP(resp1, req1)
	if resp1.Code != http.StatusOK {
		t.Fatalf("expected first request 200, got %d", resp1.Code)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/api/v1/export/pdf/a", nil)
	resp2 := httptest.NewRecorder()
	r.ServeHTTP(resp2, req2)
	if resp2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", resp2.Code)
	}
	if got := resp2.Header().Get("Retry-After"); got != "1" {
		t.Fatalf("expected Retry-After 1, got %q", got)
	}

	var payload struct {
		Error struct {
			Code    string         `json:"code"`
			Details map[string]any `json:"details"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp2.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Error.Code != "rate_limited" {
		t.Fatalf("expected code rate_limited, got %q", payload.Error.Code)
	}
	if _, ok := payload.Error.Details["retryAfterMs"]; !ok {
		t.Fatalf("expected retryAfterMs in details")
	}
}

func TestLimiterDropsRefilledBuckets(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewLimiter(Rate{PerSecond: 1, Burst: 2}, func() time.Time { return clock })

	for _, key := range []string{"guest:a", "guest:b", "guest:c"} {
		l.Allow(key)
	}
	if got := l.Len(); got != 3 {
		t.Fatalf("expected 3 buckets, got %d", got)
	}

	clock = clock.Add(3 * time.Second)
	if ok, _ := l.Allow("guest:d"); !ok {
		t.Fatalf("expected new key to be allowed")
	}
	if got := l.Len(); got != 1 {
		t.Fatalf("expected refilled buckets to be dropped, got %d", got)
	}

	// A dropped key starts again from a full bucket.
	for i := 0; i < 2; i++ {
		if ok, _ := l.Allow("guest:a"); !ok {
			t.Fatalf("request %d should be allowed", i)
		}
	}
	if ok, _ := l.Allow("guest:a"); ok {
		t.Fatalf("expected burst to be exhausted")
	}
}
