package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func corsHeaders(t *testing.T, allowedOrigins, requestOrigin string) http.Header {
	t.Helper()
	t.Setenv("ALLOWED_ORIGINS", allowedOrigins)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORSMiddleware())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if requestOrigin != "" {
		req.Header.Set("Origin", requestOrigin)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec.Header()
}

func TestCORSWildcardFallbackOmitsCredentials(t *testing.T) {
	headers := corsHeaders(t, "", "https://anywhere.example")

	if got := headers.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard origin, got %q", got)
	}
	if got := headers.Get("Access-Control-Allow-Credentials"); got != "" {
		t.Fatalf("wildcard response must not allow credentials, got %q", got)
	}
}

func TestCORSAllowedOriginEchoedWithCredentials(t *testing.T) {
	headers := corsHeaders(t, "https://sufipulse.com,https://admin.sufipulse.com", "https://sufipulse.com")

	if got := headers.Get("Access-Control-Allow-Origin"); got != "https://sufipulse.com" {
		t.Fatalf("expected origin echoed back, got %q", got)
	}
	if got := headers.Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Fatalf("expected credentials allowed for listed origin, got %q", got)
	}
}

func TestCORSUnlistedOriginGetsNoAllowOrigin(t *testing.T) {
	headers := corsHeaders(t, "https://sufipulse.com", "https://evil.example")

	if got := headers.Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("unlisted origin must not be allowed, got %q", got)
	}
	if got := headers.Get("Access-Control-Allow-Credentials"); got != "" {
		t.Fatalf("unlisted origin must not get credentials, got %q", got)
	}
}
