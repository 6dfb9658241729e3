package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"renta-autos/internal/domain"
	"renta-autos/internal/repository"
)

type NotificationService interface {
	// NotifyEmployees persists one notification per active
	// employee-role user for an alert-worthy return, and best-effort
	// emails fleet managers when the condition is bad. Individual
	// write failures are logged and skipped so one broken row never
	// blocks the rest of the round.
	NotifyEmployees(ctx context.Context, event domain.ReturnEvent) error
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error)
	MarkAsRead(ctx context.Context, id uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error
	GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}

type notificationService struct {
	notifRepo repository.NotificationRepository
	userRepo  repository.UserRepository
	email     EmailService
	log       *logrus.Logger
}

func NewNotificationService(
	notifRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
	email EmailService,
	log *logrus.Logger,
) NotificationService {
	return &notificationService{
		notifRepo: notifRepo,
		userRepo:  userRepo,
		email:     email,
		log:       log,
	}
}

func (s *notificationService) NotifyEmployees(ctx context.Context, event domain.ReturnEvent) error {
	employees, err := s.userRepo.GetActiveByRole(ctx, domain.RoleEmployee)
	if err != nil {
		return fmt.Errorf("list employees: %w", err)
	}

	notifType := domain.NotifReturnRegularCondition
	title := "vehicle returned in regular condition"
	if event.Return.Condition == domain.ConditionBad {
		notifType = domain.NotifReturnBadCondition
		title = "vehicle returned in bad condition"
	}

	detail := ""
	if event.Return.Notes != nil && *event.Return.Notes != "" {
		detail = ": " + *event.Return.Notes
	}
	message := fmt.Sprintf("%s came back in %s condition%s", event.Car.Label(), event.Return.Condition, detail)

	dataMap := map[string]string{
		"auto_id":         event.Car.ID.String(),
		"devolucion_id":   event.Return.ID.String(),
		"estado_vehiculo": string(event.Return.Condition),
	}
	if event.Return.Notes != nil {
		dataMap["observaciones"] = *event.Return.Notes
	}
	data, _ := json.Marshal(dataMap)

	for _, employee := range employees {
		notif := &domain.Notification{
			ID:      uuid.New(),
			UserID:  employee.ID,
			Type:    notifType,
			Title:   title,
			Message: message,
			Data:    json.RawMessage(data),
		}

		if err := s.notifRepo.Create(ctx, notif); err != nil {
			s.log.WithError(err).WithField("user_id", employee.ID).
				Warn("failed to create return notification")
		}
	}

	if event.Return.Condition == domain.ConditionBad {
		s.emailFleetManagers(ctx, event, message)
	}

	return nil
}

func (s *notificationService) emailFleetManagers(ctx context.Context, event domain.ReturnEvent, message string) {
	managers, err := s.userRepo.GetActiveByRole(ctx, domain.RoleFleetManager)
	if err != nil {
		s.log.WithError(err).Warn("failed to list fleet managers for alert mail")
		return
	}

	for _, manager := range managers {
		manager := manager
		go func() {
			err := s.email.SendAlertEmail(context.Background(), manager.Email, manager.FullName, event.Car.Label(), message)
			if err != nil {
				s.log.WithError(err).WithField("user_id", manager.ID).
					Warn("failed to send alert email")
			}
		}()
	}
}

func (s *notificationService) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error) {
	notifications, total, err := s.notifRepo.ListByUser(ctx, userID, unreadOnly, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Notification]{}, err
	}

	return domain.NewPaginatedResponse(notifications, params.Page, params.PageSize, total), nil
}

func (s *notificationService) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	return s.notifRepo.MarkAsRead(ctx, id)
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.notifRepo.MarkAllAsRead(ctx, userID)
}

func (s *notificationService) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.notifRepo.CountUnread(ctx, userID)
}
