package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"renta-autos/internal/domain"
	"renta-autos/internal/middleware"
	"renta-autos/internal/service"
)

type RentalHandler struct {
	rentalService service.RentalService
}

func NewRentalHandler(rentalService service.RentalService) *RentalHandler {
	return &RentalHandler{rentalService: rentalService}
}

func (h *RentalHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateRentalInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	actorID := middleware.GetCurrentUserID(c)
	meta := &service.RequestMeta{
		IPAddress: middleware.GetClientIP(c),
		UserAgent: middleware.GetUserAgent(c),
	}

	rental, err := h.rentalService.Create(c.Context(), actorID, input, meta)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(rental)
}

func (h *RentalHandler) List(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	var status *domain.RentalStatus
	if q := c.Query("status"); q != "" {
		s := domain.RentalStatus(q)
		status = &s
	}

	result, err := h.rentalService.List(c.Context(), status, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *RentalHandler) Get(c *fiber.Ctx) error {
	rentalID, err := uuid.Parse(c.Params("rentalId"))
	if err != nil {
		return middleware.BadRequest("Invalid rental ID")
	}

	rental, err := h.rentalService.GetByID(c.Context(), rentalID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(rental)
}

func (h *RentalHandler) Cancel(c *fiber.Ctx) error {
	rentalID, err := uuid.Parse(c.Params("rentalId"))
	if err != nil {
		return middleware.BadRequest("Invalid rental ID")
	}

	if err := h.rentalService.Cancel(c.Context(), rentalID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}
