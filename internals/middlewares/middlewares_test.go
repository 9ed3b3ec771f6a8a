package middlewares

import (
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ok(c *fiber.Ctx) error { return c.SendString("ok") }

func TestLoginRateLimiter_SixthAttemptRejected(t *testing.T) {
	app := fiber.New()
	app.Post("/api/login", LoginRateLimiter(), ok)

	for i := 0; i < 5; i++ {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/api/login", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode, "attempt %d", i+1)
	}
	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/api/login", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}

func loginAttempt(t *testing.T, app *fiber.App, forwardedFor string) int {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/api/login", nil)
	req.Header.Set(fiber.HeaderXForwardedFor, forwardedFor)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestLoginRateLimiter_IgnoresForwardedForFromUntrustedPeer(t *testing.T) {
	app := fiber.New(WithTrustedProxies(fiber.Config{}, nil))
	app.Post("/api/login", LoginRateLimiter(), ok)

	var codes []int
	for i := 0; i < 8; i++ {
		codes = append(codes, loginAttempt(t, app, fmt.Sprintf("203.0.113.%d", i+1)))
	}
	assert.Equal(t, []int{200, 200, 200, 200, 200, 429, 429, 429}, codes)
}

func TestLoginRateLimiter_TrustedProxyForwardsClientIP(t *testing.T) {
	// app.Test selalu datang dari 0.0.0.0
	app := fiber.New(WithTrustedProxies(fiber.Config{}, []string{"0.0.0.0"}))
	app.Post("/api/login", LoginRateLimiter(), ok)

	for i := 0; i < 5; i++ {
		require.Equal(t, fiber.StatusOK, loginAttempt(t, app, "203.0.113.1"))
	}
	assert.Equal(t, fiber.StatusTooManyRequests, loginAttempt(t, app, "203.0.113.1"))
	assert.Equal(t, fiber.StatusOK, loginAttempt(t, app, "203.0.113.2"))
}

func TestGlobalRateLimiter_SkipsHealth(t *testing.T) {
	app := fiber.New()
	app.Use(GlobalRateLimiter())
	app.Get("/api/health", ok)

	for i := 0; i < 120; i++ {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/health", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(RecoveryMiddleware())
	app.Get("/boom", func(*fiber.Ctx) error { panic("kaboom") })

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestMetrics_ExposesHTTPCounters(t *testing.T) {
	app := fiber.New()
	app.Use(MetricsMiddleware())
	app.Get("/metrics", MetricsHandler())
	app.Get("/api/members", ok)

	_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/members", nil))
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `path="/api/members"`)
}

func TestCorsMiddleware_Wildcard(t *testing.T) {
	app := fiber.New()
	app.Use(CorsMiddleware(""))
	app.Get("/x", ok)

	req := httptest.NewRequest(fiber.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://front.example")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
}
