package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"renta-autos/internal/config"
	"renta-autos/internal/repository"
)

// RequestMeta carries the caller-facing request attributes stamped
// onto audit rows and sessions.
type RequestMeta struct {
	IPAddress *string
	UserAgent *string
}

type Services struct {
	Auth         AuthService
	User         UserService
	Car          CarService
	Client       ClientService
	Rental       RentalService
	Return       ReturnService
	Repair       RepairService
	Alert        AlertService
	Notification NotificationService
	Dashboard    DashboardService
	Email        EmailService
	Audit        AuditService
}

func NewServices(repos *repository.Repositories, redis *redis.Client, minioClient *minio.Client, cfg *config.Config, log *logrus.Logger) *Services {
	emailService := NewEmailService(cfg)
	authService := NewAuthService(repos.User, repos.Session, emailService, cfg, log)
	userService := NewUserService(repos.User)
	carService := NewCarService(repos.Car, minioClient, cfg)
	clientService := NewClientService(repos.Client)
	rentalService := NewRentalService(repos.Rental, repos.Car, repos.Client, repos.AuditLog, log)
	alertService := NewAlertService(repos.Alert)
	notificationService := NewNotificationService(repos.Notification, repos.User, emailService, log)
	returnService := NewReturnService(repos.Return, repos.Rental, repos.Car, repos.AuditLog, alertService, notificationService, log)
	repairService := NewRepairService(repos.Repair, repos.Car, repos.Notification, log)
	dashboardService := NewDashboardService(repos.Car, repos.Rental, repos.Repair, repos.Alert, repos.Client, redis)
	auditService := NewAuditService(repos.AuditLog)

	return &Services{
		Auth:         authService,
		User:         userService,
		Car:          carService,
		Client:       clientService,
		Rental:       rentalService,
		Return:       returnService,
		Repair:       repairService,
		Alert:        alertService,
		Notification: notificationService,
		Dashboard:    dashboardService,
		Email:        emailService,
		Audit:        auditService,
	}
}
