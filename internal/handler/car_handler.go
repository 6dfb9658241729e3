package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"renta-autos/internal/domain"
	"renta-autos/internal/middleware"
	"renta-autos/internal/service"
)

type CarHandler struct {
	carService service.CarService
}

func NewCarHandler(carService service.CarService) *CarHandler {
	return &CarHandler{carService: carService}
}

func (h *CarHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateCarInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	car, err := h.carService.Create(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(car)
}

func (h *CarHandler) List(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	result, err := h.carService.List(c.Context(), params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *CarHandler) Get(c *fiber.Ctx) error {
	carID, err := uuid.Parse(c.Params("carId"))
	if err != nil {
		return middleware.BadRequest("Invalid car ID")
	}

	car, err := h.carService.GetByID(c.Context(), carID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(car)
}

func (h *CarHandler) Update(c *fiber.Ctx) error {
	carID, err := uuid.Parse(c.Params("carId"))
	if err != nil {
		return middleware.BadRequest("Invalid car ID")
	}

	var input domain.UpdateCarInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	car, err := h.carService.Update(c.Context(), carID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(car)
}

func (h *CarHandler) SetAvailability(c *fiber.Ctx) error {
	carID, err := uuid.Parse(c.Params("carId"))
	if err != nil {
		return middleware.BadRequest("Invalid car ID")
	}

	var body struct {
		Available *bool `json:"available"`
	}
	if err := c.BodyParser(&body); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if body.Available == nil {
		return middleware.BadRequest("Missing available flag")
	}

	if err := h.carService.SetAvailability(c.Context(), carID, *body.Available); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *CarHandler) UploadPhoto(c *fiber.Ctx) error {
	carID, err := uuid.Parse(c.Params("carId"))
	if err != nil {
		return middleware.BadRequest("Invalid car ID")
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return middleware.BadRequest("Missing photo file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.BadRequest("Cannot read photo file")
	}
	defer file.Close()

	car, err := h.carService.UploadPhoto(
		c.Context(), carID,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
	)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(car)
}

func (h *CarHandler) Delete(c *fiber.Ctx) error {
	carID, err := uuid.Parse(c.Params("carId"))
	if err != nil {
		return middleware.BadRequest("Invalid car ID")
	}

	if err := h.carService.Delete(c.Context(), carID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}
