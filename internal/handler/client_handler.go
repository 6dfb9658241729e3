package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"renta-autos/internal/domain"
	"renta-autos/internal/middleware"
	"renta-autos/internal/service"
)

type ClientHandler struct {
	clientService service.ClientService
}

func NewClientHandler(clientService service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateClientInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	client, err := h.clientService.Create(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(client)
}

func (h *ClientHandler) List(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	result, err := h.clientService.List(c.Context(), params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *ClientHandler) Get(c *fiber.Ctx) error {
	clientID, err := uuid.Parse(c.Params("clientId"))
	if err != nil {
		return middleware.BadRequest("Invalid client ID")
	}

	client, err := h.clientService.GetByID(c.Context(), clientID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(client)
}

func (h *ClientHandler) Update(c *fiber.Ctx) error {
	clientID, err := uuid.Parse(c.Params("clientId"))
	if err != nil {
		return middleware.BadRequest("Invalid client ID")
	}

	var input domain.UpdateClientInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	client, err := h.clientService.Update(c.Context(), clientID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(client)
}

func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	clientID, err := uuid.Parse(c.Params("clientId"))
	if err != nil {
		return middleware.BadRequest("Invalid client ID")
	}

	if err := h.clientService.Delete(c.Context(), clientID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}
