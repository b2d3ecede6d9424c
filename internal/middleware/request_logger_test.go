package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"via-proposito/internal/domain"
	"via-proposito/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger_RendersErrorOnce(t *testing.T) {
	calls := 0
	handler := middleware.ErrorHandler()
	app := fiber.New(fiber.Config{ErrorHandler: func(c *fiber.Ctx, err error) error {
		calls++
		return handler(c, err)
	}})
	app.Use(middleware.RequestLogger())
	app.Get("/missing", func(c *fiber.Ctx) error { return domain.NewNotFoundError("nothing here") })
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, 1, calls)

	resp, err = app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, calls)
}
