package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const correlationHeader = "X-Correlation-ID"

type correlationIDKey struct{}

var correlationKey = correlationIDKey{}

// CorrelationID tags every request with an identifier so a routine write and
// the log lines it produces can be tied together. An incoming header wins;
// X-Request-ID is honoured for older clients.
func CorrelationID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := resolveCorrelationID(c)

		c.Locals("correlation_id", id)
		c.Set(correlationHeader, id)
		c.SetUserContext(context.WithValue(c.Context(), correlationKey, id))

		return c.Next()
	}
}

func resolveCorrelationID(c *fiber.Ctx) string {
	if id := strings.TrimSpace(c.Get(correlationHeader)); id != "" {
		return id
	}
	if id := strings.TrimSpace(c.Get("X-Request-ID")); id != "" {
		return id
	}

	return uuid.NewString()
}

// CorrelationIDFromContext extracts the identifier from a plain context.
func CorrelationIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(correlationKey).(string); ok {
		return id
	}

	return ""
}

// GetCorrelationID returns the identifier bound to the active request.
func GetCorrelationID(c *fiber.Ctx) string {
	if c == nil {
		return ""
	}
	if id, ok := c.Locals("correlation_id").(string); ok {
		return id
	}

	return CorrelationIDFromContext(c.Context())
}
