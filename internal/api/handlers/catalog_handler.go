package handlers

import (
	"errors"

	"freshtrack/domain"
	"freshtrack/internal/api/presenters"
	"freshtrack/pkg/catalog"

	"github.com/gofiber/fiber/v2"
)

type (
	CatalogHandler interface {
		SearchFoods(c *fiber.Ctx) error
		GetFoodExpiry(c *fiber.Ctx) error
	}

	catalogHandler struct {
		catalogService catalog.CatalogService
	}
)

func NewCatalogHandler(catalogService catalog.CatalogService) CatalogHandler {
	return &catalogHandler{catalogService: catalogService}
}

func (h *catalogHandler) SearchFoods(c *fiber.Ctx) error {
	query := c.Query("query")

	results, err := h.catalogService.SearchFoods(c.Context(), query)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchFoods, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"results": results}, fiber.StatusOK, domain.MessageSuccessSearchFoods)
}

func (h *catalogHandler) GetFoodExpiry(c *fiber.Ctx) error {
	foodName := c.Params("name")

	result, err := h.catalogService.GetFoodExpiry(c.Context(), foodName)
	if err != nil {
		if errors.Is(err, domain.ErrFoodNotInCatalog) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetFoodExpiry, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoodExpiry, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessGetFoodExpiry)
}
