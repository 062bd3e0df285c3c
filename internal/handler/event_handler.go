package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/wedsnap/wedsnap-backend/internal/models"
	"github.com/wedsnap/wedsnap-backend/internal/service"
	"github.com/wedsnap/wedsnap-backend/pkg/utils"
)

type EventHandler struct {
	eventService *service.EventService
	validator    *utils.Validator
}

func NewEventHandler(eventService *service.EventService, validator *utils.Validator) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		validator:    validator,
	}
}

func (h *EventHandler) ListEvents(c *fiber.Ctx) error {
	events, err := h.eventService.ListEvents()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to fetch events"))
	}
	if events == nil {
		events = []models.EventWithCounts{}
	}

	return c.JSON(fiber.Map{"events": events})
}

func (h *EventHandler) GetEventBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	event, err := h.eventService.GetEventBySlug(slug)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Event not found"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to fetch event"))
	}

	return c.JSON(fiber.Map{"event": event})
}

func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var req models.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	adminID, ok := c.Locals("adminID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Not authenticated"))
	}

	event, err := h.eventService.CreateEvent(adminID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(models.ErrorResponse("Event slug already exists"))
		case errors.Is(err, service.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event date"))
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to create event"))
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"event":   event,
	})
}
