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

// AttendanceHandler wires attendance HTTP routes.
type AttendanceHandler struct {
	service service.AttendanceService
	logger  zerolog.Logger
}

// NewAttendanceHandler constructs the handler.
func NewAttendanceHandler(service service.AttendanceService, logger zerolog.Logger) *AttendanceHandler {
	return &AttendanceHandler{
		service: service,
		logger:  logger.With().Str("component", "attendance_handler").Logger(),
	}
}

// Register attaches attendance endpoints to the router group.
func (h *AttendanceHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/summary", h.summary)
	router.Post("", h.mark)
	router.Put("/:id", h.update)
	router.Delete("/:id", h.delete)
}

func (h *AttendanceHandler) list(c *fiber.Ctx) error {
	records, err := h.service.List(c.Context())
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "attendance records retrieved", records)
}

func (h *AttendanceHandler) summary(c *fiber.Ctx) error {
	rows, err := h.service.Summary(c.Context())
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "attendance summary computed", rows)
}

func (h *AttendanceHandler) mark(c *fiber.Ctx) error {
	var payload dto.AttendanceMarkRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	record, err := h.service.Mark(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "attendance marked", record)
}

func (h *AttendanceHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.AttendanceMarkRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	record, err := h.service.Update(c.Context(), id, payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "attendance record updated", record)
}

func (h *AttendanceHandler) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "attendance record deleted", fiber.Map{"id": id})
}

func (h *AttendanceHandler) handleError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.Is(err, service.ErrAttendanceNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "attendance record not found")
	case errors.Is(err, service.ErrInvalidAttendanceStatus):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusBadRequest, validationErrors.Error())
	default:
		return h.internalError(c, err)
	}
}

func (h *AttendanceHandler) internalError(c *fiber.Ctx, err error) error {
	h.logger.Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
