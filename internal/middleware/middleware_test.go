package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"face-gallery/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecurityHeaders(t *testing.T) {
	e := echo.New()
	e.Use(SecurityHeaders("", "drive.google.com"))
	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	csp := rec.Header().Get("Content-Security-Policy")
	assert.Contains(t, csp, "script-src 'self'")
	assert.Contains(t, csp, "img-src 'self' https://drive.google.com https://*.googleusercontent.com")
	assert.Contains(t, csp, "frame-ancestors 'self'")
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, rec.Header().Get("Strict-Transport-Security"))
}

func TestContentSecurityPolicy_Domain(t *testing.T) {
	csp := ContentSecurityPolicy("photos.example.com", "drive.google.com")
	assert.Contains(t, csp, "frame-ancestors https://photos.example.com")
}

func TestMetrics(t *testing.T) {
	m := metrics.New(nil)
	e := echo.New()
	e.Use(Metrics(m))
	e.GET("/api/people", func(c echo.Context) error { return c.JSON(http.StatusOK, map[string]string{}) })

	for _, path := range []string{"/api/people", "/api/people", "/nope"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/people", "200")))
	// the 404 lands in its own series
	require.Equal(t, 2, testutil.CollectAndCount(m.HTTPRequestsTotal, "http_requests_total"))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.HTTPRequestsInFlight))
}
