package handler

import (
	"github.com/gofiber/fiber/v2"

	"renta-autos/internal/domain"
	"renta-autos/internal/service"
)

type Handlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Car          *CarHandler
	Client       *ClientHandler
	Rental       *RentalHandler
	Return       *ReturnHandler
	Repair       *RepairHandler
	Alert        *AlertHandler
	Notification *NotificationHandler
	Dashboard    *DashboardHandler
	Audit        *AuditHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth),
		User:         NewUserHandler(services.User),
		Car:          NewCarHandler(services.Car),
		Client:       NewClientHandler(services.Client),
		Rental:       NewRentalHandler(services.Rental),
		Return:       NewReturnHandler(services.Return),
		Repair:       NewRepairHandler(services.Repair),
		Alert:        NewAlertHandler(services.Alert),
		Notification: NewNotificationHandler(services.Notification),
		Dashboard:    NewDashboardHandler(services.Dashboard),
		Audit:        NewAuditHandler(services.Audit),
	}
}

func getPaginationParams(c *fiber.Ctx) domain.PaginationParams {
	params := domain.DefaultPagination()

	if page := c.QueryInt("page"); page > 0 {
		params.Page = page
	}
	if pageSize := c.QueryInt("page_size"); pageSize > 0 {
		params.PageSize = pageSize
	}

	params.Validate()
	return params
}
