package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/acadia-edu/acadia-go-api/internal/dto"
	"github.com/acadia-edu/acadia-go-api/internal/service"
	"github.com/acadia-edu/acadia-go-api/internal/utils"
)

// CalendarHandler wires academic calendar HTTP routes.
type CalendarHandler struct {
	service service.CalendarService
	logger  zerolog.Logger
}

// NewCalendarHandler constructs the handler.
func NewCalendarHandler(service service.CalendarService, logger zerolog.Logger) *CalendarHandler {
	return &CalendarHandler{
		service: service,
		logger:  logger.With().Str("component", "calendar_handler").Logger(),
	}
}

// Register attaches calendar endpoints to the router group.
func (h *CalendarHandler) Register(router fiber.Router) {
	router.Get("/events", h.listEvents)
	router.Post("/events", h.addEvent)
	router.Delete("/events/:id", h.deleteEvent)
	router.Get("/days/:date", h.day)
}

func (h *CalendarHandler) listEvents(c *fiber.Ctx) error {
	events, err := h.service.ListEvents(c.Context())
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "calendar events retrieved", events)
}

func (h *CalendarHandler) addEvent(c *fiber.Ctx) error {
	var payload dto.CalendarEventCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	event, err := h.service.AddEvent(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "calendar event added", event)
}

func (h *CalendarHandler) deleteEvent(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.DeleteEvent(c.Context(), id); err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "calendar event deleted", fiber.Map{"id": id})
}

func (h *CalendarHandler) day(c *fiber.Ctx) error {
	day, err := h.service.Day(c.Context(), c.Params("date"))
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "calendar day retrieved", day)
}

func (h *CalendarHandler) handleError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.Is(err, service.ErrCalendarEventNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "calendar event not found")
	case errors.Is(err, service.ErrInvalidEventType), errors.Is(err, service.ErrInvalidDate):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusBadRequest, validationErrors.Error())
	default:
		return h.internalError(c, err)
	}
}

func (h *CalendarHandler) internalError(c *fiber.Ctx, err error) error {
	h.logger.Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
