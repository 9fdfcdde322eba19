package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCorrelationIDGeneratesWhenAbsent(t *testing.T) {
	app := fiber.New()
	app.Use(CorrelationID())

	var seen string
	app.Get("/", func(c *fiber.Ctx) error {
		seen = GetCorrelationID(c)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	header := resp.Header.Get("X-Correlation-ID")
	require.NotEmpty(t, header)
	require.Equal(t, header, seen)
	_, err = uuid.Parse(header)
	require.NoError(t, err)
}

func TestCorrelationIDPropagatesIncoming(t *testing.T) {
	app := fiber.New()
	app.Use(CorrelationID())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Correlation-ID", "req-abc-123")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, "req-abc-123", resp.Header.Get("X-Correlation-ID"))
}

func TestCorrelationIDFallsBackToRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(CorrelationID())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "legacy-42")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, "legacy-42", resp.Header.Get("X-Correlation-ID"))
}
