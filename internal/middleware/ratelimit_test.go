package middleware_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resourcemetrics/internal/config"
	"resourcemetrics/internal/middleware"
)

func newRateLimited(cfg config.RateLimitConfig, exempt ...string) *echo.Echo {
	e := echo.New()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	e.Use(middleware.RateLimit(cfg, logger, exempt...))
	e.GET("/test", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	return e
}

func fromIP(e *echo.Echo, target, ip, bypass string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.RemoteAddr = ip + ":12345"
	if bypass != "" {
		req.Header.Set(middleware.BypassHeader, bypass)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit_AllowsRequestsUnderLimit(t *testing.T) {
	e := newRateLimited(config.RateLimitConfig{RPS: 10, Burst: 5, ExpireMinutes: 1})

	for i := range 5 {
		assert.Equal(t, http.StatusOK, fromIP(e, "/test", "192.168.1.1", "").Code, "request %d should succeed", i)
	}
}

func TestRateLimit_Returns429WithCorrectResponse(t *testing.T) {
	e := newRateLimited(config.RateLimitConfig{RPS: 0.1, Burst: 1, ExpireMinutes: 1})

	fromIP(e, "/test", "192.168.1.3", "")
	rec := fromIP(e, "/test", "192.168.1.3", "")

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	var resp struct {
		Error      string `json:"error"`
		RetryAfter int    `json:"retry_after"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "rate limit exceeded", resp.Error)
	assert.Equal(t, 1, resp.RetryAfter)
}

func TestRateLimit_DifferentIPsHaveSeparateLimits(t *testing.T) {
	e := newRateLimited(config.RateLimitConfig{RPS: 0.1, Burst: 1, ExpireMinutes: 1})

	assert.Equal(t, http.StatusOK, fromIP(e, "/test", "192.168.1.4", "").Code)
	assert.Equal(t, http.StatusOK, fromIP(e, "/test", "192.168.1.5", "").Code)
}

func TestRateLimit_Bypass(t *testing.T) {
	tests := []struct {
		name       string
		secret     string
		provided   string
		wantStatus int
	}{
		{"correct secret", "test_secret", "test_secret", http.StatusOK},
		{"wrong secret", "test_secret", "wrong_secret", http.StatusTooManyRequests},
		{"bypass disabled", "", "anything", http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newRateLimited(config.RateLimitConfig{RPS: 0.1, Burst: 1, ExpireMinutes: 1, BypassSecret: tt.secret})

			var last int
			for range 5 {
				last = fromIP(e, "/test", "192.168.1.6", tt.provided).Code
			}
			assert.Equal(t, tt.wantStatus, last)
		})
	}
}

func TestRateLimit_ExemptPath(t *testing.T) {
	e := newRateLimited(config.RateLimitConfig{RPS: 0.1, Burst: 1, ExpireMinutes: 1}, "/health")

	for range 5 {
		assert.Equal(t, http.StatusOK, fromIP(e, "/health", "192.168.1.8", "").Code)
	}
	assert.Equal(t, http.StatusOK, fromIP(e, "/test", "192.168.1.8", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, fromIP(e, "/test", "192.168.1.8", "").Code)
}
