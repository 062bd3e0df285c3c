package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/wedsnap/wedsnap-backend/internal/models"
	"github.com/wedsnap/wedsnap-backend/internal/service"
)

type SearchHandler struct {
	searchService *service.SearchService
}

func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
	}
}

func (h *SearchHandler) SearchPhotos(c *fiber.Ctx) error {
	eventSlug := c.Params("eventSlug")

	probe, err := c.FormFile("guestPhoto")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("No photo uploaded"))
	}

	resp, err := h.searchService.Search(c.Context(), eventSlug, probe, c.IP())
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Event not found"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Search failed"))
	}

	return c.JSON(resp)
}
