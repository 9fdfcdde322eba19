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

// FacultyHandler wires faculty HTTP routes.
type FacultyHandler struct {
	service service.FacultyService
	logger  zerolog.Logger
}

// NewFacultyHandler constructs the handler.
func NewFacultyHandler(service service.FacultyService, logger zerolog.Logger) *FacultyHandler {
	return &FacultyHandler{
		service: service,
		logger:  logger.With().Str("component", "faculty_handler").Logger(),
	}
}

// Register attaches faculty endpoints to the router group.
func (h *FacultyHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.get)
	router.Post("", h.create)
	router.Patch("/:id", h.update)
	router.Delete("/:id", h.delete)
}

func (h *FacultyHandler) list(c *fiber.Ctx) error {
	faculty, err := h.service.List(c.Context())
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "faculty retrieved", faculty)
}

func (h *FacultyHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	member, err := h.service.Get(c.Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "faculty member retrieved", member)
}

func (h *FacultyHandler) create(c *fiber.Ctx) error {
	var payload dto.FacultyCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	member, err := h.service.Create(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "faculty member registered", member)
}

func (h *FacultyHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.FacultyUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	member, err := h.service.Update(c.Context(), id, payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "faculty member updated", member)
}

func (h *FacultyHandler) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "faculty member deleted", fiber.Map{"id": id})
}

func (h *FacultyHandler) handleError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.Is(err, service.ErrFacultyNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "faculty member not found")
	case errors.Is(err, service.ErrFacultyIDTaken):
		return utils.SendError(c, fiber.StatusConflict, "faculty id already in use")
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusBadRequest, validationErrors.Error())
	default:
		return h.internalError(c, err)
	}
}

func (h *FacultyHandler) internalError(c *fiber.Ctx, err error) error {
	h.logger.Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
