package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/acadia-edu/acadia-go-api/internal/service"
	"github.com/acadia-edu/acadia-go-api/internal/utils"
)

// DashboardHandler wires the dashboard endpoint.
type DashboardHandler struct {
	service service.DashboardService
	logger  zerolog.Logger
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(service service.DashboardService, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		logger:  logger.With().Str("component", "dashboard_handler").Logger(),
	}
}

// Register attaches the dashboard endpoint to the router group.
func (h *DashboardHandler) Register(router fiber.Router) {
	router.Get("", h.get)
}

func (h *DashboardHandler) get(c *fiber.Ctx) error {
	dashboard, err := h.service.GetDashboard(c.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}

	return utils.SendSuccess(c, "dashboard retrieved", dashboard)
}
