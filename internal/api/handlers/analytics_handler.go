package handlers

import (
	"freshtrack/domain"
	"freshtrack/internal/api/presenters"
	"freshtrack/pkg/analytics"

	"github.com/gofiber/fiber/v2"
)

type (
	AnalyticsHandler interface {
		GetWasteReport(c *fiber.Ctx) error
		SaveSnapshot(c *fiber.Ctx) error
		GetSnapshots(c *fiber.Ctx) error
	}

	analyticsHandler struct {
		analyticsService analytics.AnalyticsService
	}
)

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &analyticsHandler{analyticsService: analyticsService}
}

func (h *analyticsHandler) GetWasteReport(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	report, err := h.analyticsService.ComputeWasteReport(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetWasteReport, err)
	}

	return presenters.SuccessResponse(c, report, fiber.StatusOK, domain.MessageSuccessGetWasteReport)
}

func (h *analyticsHandler) SaveSnapshot(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	snapshot, err := h.analyticsService.SaveSnapshot(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveSnapshot, err)
	}

	return presenters.SuccessResponse(c, snapshot, fiber.StatusCreated, domain.MessageSuccessSaveSnapshot)
}

func (h *analyticsHandler) GetSnapshots(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	snapshots, err := h.analyticsService.GetSnapshots(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSnapshots, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"snapshots": snapshots}, fiber.StatusOK, domain.MessageSuccessGetSnapshots)
}
