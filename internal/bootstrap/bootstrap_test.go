package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mertc/coursehub/internal/config"
)

func newCORSTestRouter(t *testing.T, allowedOrigin string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.CORS.AllowedOrigin = allowedOrigin

	router := gin.New()
	router.Use(cors.New(newCORSConfig(cfg)))
	router.POST("/api/v1/courses", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func preflight(router *gin.Engine, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/courses", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCORSPreflightIsNeverCached(t *testing.T) {
	router := newCORSTestRouter(t, "http://localhost:8080")

	rec := preflight(router, "http://localhost:8080")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 preflight, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:8080" {
		t.Errorf("unexpected Access-Control-Allow-Origin %q", got)
	}
	if got := rec.Header().Get("Access-Control-Max-Age"); got != "" && got != "0" {
		t.Errorf("preflight must not be cacheable, got Access-Control-Max-Age %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != "" {
		t.Errorf("credentials must never be allowed, got %q", got)
	}
}

func TestCORSRejectsOtherOrigins(t *testing.T) {
	router := newCORSTestRouter(t, "http://localhost:8080")

	rec := preflight(router, "http://evil.example.com")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for disallowed origin, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("disallowed origin must not be echoed, got %q", got)
	}
}
