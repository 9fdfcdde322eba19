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

// RoutineHandler wires routine HTTP routes.
type RoutineHandler struct {
	service service.RoutineService
	logger  zerolog.Logger
}

// NewRoutineHandler constructs the handler.
func NewRoutineHandler(service service.RoutineService, logger zerolog.Logger) *RoutineHandler {
	return &RoutineHandler{
		service: service,
		logger:  logger.With().Str("component", "routine_handler").Logger(),
	}
}

// Register attaches routine endpoints to the router group.
func (h *RoutineHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.get)
	router.Post("", h.create)
	router.Put("/:id", h.update)
	router.Delete("/:id", h.delete)
}

func (h *RoutineHandler) list(c *fiber.Ctx) error {
	entries, err := h.service.List(c.Context())
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "routine retrieved", entries)
}

func (h *RoutineHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	entry, err := h.service.Get(c.Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "routine entry retrieved", entry)
}

func (h *RoutineHandler) create(c *fiber.Ctx) error {
	var payload dto.RoutineEntryRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	entry, err := h.service.Create(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "class added to routine", entry)
}

func (h *RoutineHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.RoutineEntryRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	entry, err := h.service.Update(c.Context(), id, payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "routine entry updated", entry)
}

func (h *RoutineHandler) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "routine entry deleted", fiber.Map{"id": id})
}

func (h *RoutineHandler) handleError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	var conflict *service.SlotConflict
	switch {
	case errors.Is(err, service.ErrRoutineEntryNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "routine entry not found")
	case errors.As(err, &conflict):
		return utils.SendError(c, fiber.StatusConflict, conflict.Error())
	case errors.Is(err, service.ErrInvalidWeekday), errors.Is(err, service.ErrInvalidTimeSlot):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusBadRequest, validationErrors.Error())
	default:
		return h.internalError(c, err)
	}
}

func (h *RoutineHandler) internalError(c *fiber.Ctx, err error) error {
	h.logger.Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
