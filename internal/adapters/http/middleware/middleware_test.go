package middleware

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func call(t *testing.T, app *fiber.App, method, path string) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, path, nil), -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestCustomErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: CustomErrorHandler})
	app.Get("/teapot", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("db password is hunter2")
	})

	resp, body := call(t, app, http.MethodGet, "/teapot")
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)
	assert.JSONEq(t, `{"error":"short and stout"}`, body)

	resp, body = call(t, app, http.MethodGet, "/boom")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, body)

	resp, body = call(t, app, http.MethodGet, "/missing")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, `"error"`)
}

func TestAuthMiddleware_DisabledWithoutSecret(t *testing.T) {
	app := fiber.New()
	app.Get("/", AuthMiddleware(""), func(c *fiber.Ctx) error {
		return c.SendString("open")
	})

	resp, body := call(t, app, http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "open", body)
}

func TestCacheHeaders(t *testing.T) {
	app := fiber.New()
	app.Get("/cached", CacheControl(time.Hour), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/fresh", NoCacheHeaders(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/cached-error", CacheControl(time.Hour), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNotFound)
	})

	resp, _ := call(t, app, http.MethodGet, "/cached")
	assert.Equal(t, "public, max-age=3600", resp.Header.Get("Cache-Control"))

	resp, _ = call(t, app, http.MethodGet, "/fresh")
	assert.Equal(t, "no-store, no-cache, must-revalidate", resp.Header.Get("Cache-Control"))
	assert.Equal(t, "no-cache", resp.Header.Get("Pragma"))

	resp, _ = call(t, app, http.MethodGet, "/cached-error")
	assert.Empty(t, resp.Header.Get("Cache-Control"))
}

func TestWriteRateLimiter(t *testing.T) {
	app := fiber.New()
	app.Post("/bulk", WriteRateLimiter(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	for i := 0; i < 10; i++ {
		resp, _ := call(t, app, http.MethodPost, "/bulk")
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, body := call(t, app, http.MethodPost, "/bulk")
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Rate limit exceeded"}`, body)
}
