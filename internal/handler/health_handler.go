package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/acadia-edu/acadia-go-api/internal/config"
	"github.com/acadia-edu/acadia-go-api/internal/utils"
)

var startedAt = time.Now().UTC()

// HealthResponse reports service liveness and identity.
type HealthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Service     string    `json:"service"`
	Environment string    `json:"environment"`
	Uptime      string    `json:"uptime"`
}

// HealthCheck returns the liveness handler.
func HealthCheck(cfg config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		now := time.Now().UTC()
		payload := HealthResponse{
			Status:      "ok",
			Timestamp:   now,
			Service:     cfg.AppName,
			Environment: cfg.AppEnv,
			Uptime:      now.Sub(startedAt).Round(time.Second).String(),
		}

		return utils.SendSuccess(c, "service healthy", payload)
	}
}
