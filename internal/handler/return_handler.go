package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"renta-autos/internal/domain"
	"renta-autos/internal/middleware"
	"renta-autos/internal/service"
)

type ReturnHandler struct {
	returnService service.ReturnService
}

func NewReturnHandler(returnService service.ReturnService) *ReturnHandler {
	return &ReturnHandler{returnService: returnService}
}

// Intake records a vehicle return and runs the alert/notification
// cascade behind it. The wire contract keeps the Spanish field names
// the back-office forms submit.
func (h *ReturnHandler) Intake(c *fiber.Ctx) error {
	var input domain.CreateReturnInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	actorID := middleware.GetCurrentUserID(c)
	meta := &service.RequestMeta{
		IPAddress: middleware.GetClientIP(c),
		UserAgent: middleware.GetUserAgent(c),
	}

	ret, err := h.returnService.Intake(c.Context(), actorID, input, meta)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":    true,
		"message":    "Return recorded",
		"devolucion": ret,
	})
}

func (h *ReturnHandler) List(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	result, err := h.returnService.List(c.Context(), params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":      true,
		"devoluciones": result.Data,
		"page":         result.Page,
		"page_size":    result.PageSize,
		"total_items":  result.TotalItems,
	})
}

func (h *ReturnHandler) Get(c *fiber.Ctx) error {
	returnID, err := uuid.Parse(c.Params("returnId"))
	if err != nil {
		return middleware.BadRequest("Invalid return ID")
	}

	ret, err := h.returnService.GetByID(c.Context(), returnID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"devolucion": ret,
	})
}
