package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Car          CarRepository
	Client       ClientRepository
	Rental       RentalRepository
	Return       ReturnRepository
	Repair       RepairRepository
	Alert        AlertRepository
	Notification NotificationRepository
	User         UserRepository
	Session      SessionRepository
	AuditLog     AuditLogRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Car:          NewCarRepository(db),
		Client:       NewClientRepository(db),
		Rental:       NewRentalRepository(db),
		Return:       NewReturnRepository(db),
		Repair:       NewRepairRepository(db),
		Alert:        NewAlertRepository(db),
		Notification: NewNotificationRepository(db),
		User:         NewUserRepository(db),
		Session:      NewSessionRepository(db),
		AuditLog:     NewAuditLogRepository(db),
	}
}
