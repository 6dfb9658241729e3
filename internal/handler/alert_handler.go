package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"renta-autos/internal/middleware"
	"renta-autos/internal/service"
)

type AlertHandler struct {
	alertService service.AlertService
}

func NewAlertHandler(alertService service.AlertService) *AlertHandler {
	return &AlertHandler{alertService: alertService}
}

func (h *AlertHandler) List(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	var resolved *bool
	switch c.Query("resolved") {
	case "true":
		v := true
		resolved = &v
	case "false":
		v := false
		resolved = &v
	}

	result, err := h.alertService.List(c.Context(), resolved, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *AlertHandler) Resolve(c *fiber.Ctx) error {
	alertID, err := uuid.Parse(c.Params("alertId"))
	if err != nil {
		return middleware.BadRequest("Invalid alert ID")
	}

	resolvedBy := middleware.GetCurrentUserID(c)

	if err := h.alertService.Resolve(c.Context(), alertID, resolvedBy); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}
