package handlers

import (
	"errors"

	"freshtrack/domain"
	"freshtrack/internal/api/presenters"
	"freshtrack/pkg/retailer"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RetailerHandler interface {
		SearchProducts(c *fiber.Ctx) error
		AddPurchase(c *fiber.Ctx) error
	}

	retailerHandler struct {
		retailerService retailer.RetailerService
		validator       *validator.Validate
	}
)

func NewRetailerHandler(retailerService retailer.RetailerService, validator *validator.Validate) RetailerHandler {
	return &retailerHandler{
		retailerService: retailerService,
		validator:       validator,
	}
}

func (h *retailerHandler) SearchProducts(c *fiber.Ctx) error {
	query := c.Params("query")

	results, err := h.retailerService.SearchProducts(c.Context(), query)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchProducts, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"results": results}, fiber.StatusOK, domain.MessageSuccessSearchProducts)
}

func (h *retailerHandler) AddPurchase(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddPurchaseRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddPurchase, err)
	}

	res, err := h.retailerService.AddPurchase(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedAddPurchase, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddPurchase, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddPurchase)
}
