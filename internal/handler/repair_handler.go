package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"renta-autos/internal/domain"
	"renta-autos/internal/middleware"
	"renta-autos/internal/service"
)

type RepairHandler struct {
	repairService service.RepairService
}

func NewRepairHandler(repairService service.RepairService) *RepairHandler {
	return &RepairHandler{repairService: repairService}
}

func (h *RepairHandler) Open(c *fiber.Ctx) error {
	var input domain.CreateRepairInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	actorID := middleware.GetCurrentUserID(c)

	repair, err := h.repairService.Open(c.Context(), actorID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(repair)
}

func (h *RepairHandler) List(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	var status *domain.RepairStatus
	if q := c.Query("status"); q != "" {
		s := domain.RepairStatus(q)
		status = &s
	}

	result, err := h.repairService.List(c.Context(), status, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *RepairHandler) Get(c *fiber.Ctx) error {
	repairID, err := uuid.Parse(c.Params("repairId"))
	if err != nil {
		return middleware.BadRequest("Invalid repair ID")
	}

	repair, err := h.repairService.GetByID(c.Context(), repairID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(repair)
}

func (h *RepairHandler) Complete(c *fiber.Ctx) error {
	repairID, err := uuid.Parse(c.Params("repairId"))
	if err != nil {
		return middleware.BadRequest("Invalid repair ID")
	}

	if err := h.repairService.Complete(c.Context(), repairID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}
