package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func preflight(t *testing.T, app *fiber.App, origin string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set(fiber.HeaderOrigin, origin)
	req.Header.Set(fiber.HeaderAccessControlRequestMethod, http.MethodPost)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func TestInitFiberServer_CORSDisabledByDefault(t *testing.T) {
	app := InitFiberServer(Options{AppName: "test-app"})
	app.Post("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	resp := preflight(t, app, "https://evil.example")

	assert.Empty(t, resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
}

func TestInitFiberServer_CORSAllowList(t *testing.T) {
	app := InitFiberServer(Options{AppName: "test-app", CORSOrigins: "https://app.example"})
	app.Post("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	allowed := preflight(t, app, "https://app.example")
	assert.Equal(t, "https://app.example", allowed.Header.Get(fiber.HeaderAccessControlAllowOrigin))

	denied := preflight(t, app, "https://evil.example")
	assert.Empty(t, denied.Header.Get(fiber.HeaderAccessControlAllowOrigin))
}

func TestInitFiberServer_ErrorsAreJSON(t *testing.T) {
	app := InitFiberServer(Options{AppName: "test-app"})
	app.Get("/teapot", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/teapot", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON)
}
