package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"renta-autos/internal/domain"
	"renta-autos/tests/mocks"
)

func regularReturnEvent() domain.ReturnEvent {
	car := &domain.Car{ID: uuid.New(), Brand: "Mazda", Model: "3", Plate: "MZD-333"}
	return domain.ReturnEvent{
		Return: &domain.Return{
			ID:        uuid.New(),
			CarID:     car.ID,
			Condition: domain.ConditionRegular,
		},
		Car: car,
	}
}

func TestNotifyEmployees_OneNotificationPerEmployee(t *testing.T) {
	notifRepo := new(mocks.NotificationRepository)
	userRepo := new(mocks.UserRepository)
	email := new(mocks.EmailService)
	svc := NewNotificationService(notifRepo, userRepo, email, testLogger())

	employees := []domain.User{
		{ID: uuid.New(), Role: string(domain.RoleEmployee)},
		{ID: uuid.New(), Role: string(domain.RoleEmployee)},
		{ID: uuid.New(), Role: string(domain.RoleEmployee)},
	}
	userRepo.On("GetActiveByRole", mock.Anything, domain.RoleEmployee).Return(employees, nil)
	notifRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Notification")).Return(nil)

	err := svc.NotifyEmployees(context.Background(), regularReturnEvent())

	require.NoError(t, err)
	notifRepo.AssertNumberOfCalls(t, "Create", 3)
}

func TestNotifyEmployees_RegularConditionType(t *testing.T) {
	notifRepo := new(mocks.NotificationRepository)
	userRepo := new(mocks.UserRepository)
	email := new(mocks.EmailService)
	svc := NewNotificationService(notifRepo, userRepo, email, testLogger())

	employee := domain.User{ID: uuid.New(), Role: string(domain.RoleEmployee)}
	userRepo.On("GetActiveByRole", mock.Anything, domain.RoleEmployee).Return([]domain.User{employee}, nil)

	var captured *domain.Notification
	notifRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Notification")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*domain.Notification)
		}).Return(nil)

	err := svc.NotifyEmployees(context.Background(), regularReturnEvent())

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, employee.ID, captured.UserID)
	assert.Equal(t, domain.NotifReturnRegularCondition, captured.Type)
	assert.Contains(t, captured.Message, "Mazda 3 (MZD-333)")
}

func TestNotifyEmployees_BadConditionType(t *testing.T) {
	notifRepo := new(mocks.NotificationRepository)
	userRepo := new(mocks.UserRepository)
	email := new(mocks.EmailService)
	svc := NewNotificationService(notifRepo, userRepo, email, testLogger())

	event := regularReturnEvent()
	event.Return.Condition = domain.ConditionBad

	userRepo.On("GetActiveByRole", mock.Anything, domain.RoleEmployee).
		Return([]domain.User{{ID: uuid.New()}}, nil)
	userRepo.On("GetActiveByRole", mock.Anything, domain.RoleFleetManager).
		Return([]domain.User{}, nil)

	var captured *domain.Notification
	notifRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Notification")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*domain.Notification)
		}).Return(nil)

	err := svc.NotifyEmployees(context.Background(), event)

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, domain.NotifReturnBadCondition, captured.Type)
}

func TestNotifyEmployees_EmployeeLookupFails(t *testing.T) {
	notifRepo := new(mocks.NotificationRepository)
	userRepo := new(mocks.UserRepository)
	email := new(mocks.EmailService)
	svc := NewNotificationService(notifRepo, userRepo, email, testLogger())

	userRepo.On("GetActiveByRole", mock.Anything, domain.RoleEmployee).
		Return(nil, errors.New("connection refused"))

	err := svc.NotifyEmployees(context.Background(), regularReturnEvent())

	require.Error(t, err)
	notifRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestNotifyEmployees_BrokenRowSkipped(t *testing.T) {
	notifRepo := new(mocks.NotificationRepository)
	userRepo := new(mocks.UserRepository)
	email := new(mocks.EmailService)
	svc := NewNotificationService(notifRepo, userRepo, email, testLogger())

	employees := []domain.User{
		{ID: uuid.New()},
		{ID: uuid.New()},
	}
	userRepo.On("GetActiveByRole", mock.Anything, domain.RoleEmployee).Return(employees, nil)
	notifRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.UserID == employees[0].ID
	})).Return(errors.New("insert failed"))
	notifRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.UserID == employees[1].ID
	})).Return(nil)

	err := svc.NotifyEmployees(context.Background(), regularReturnEvent())

	require.NoError(t, err)
	notifRepo.AssertNumberOfCalls(t, "Create", 2)
}
