package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"renta-autos/internal/domain"
	"renta-autos/tests/mocks"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type returnFixture struct {
	returnRepo *mocks.ReturnRepository
	rentalRepo *mocks.RentalRepository
	carRepo    *mocks.CarRepository
	auditRepo  *mocks.AuditLogRepository
	alerts     *mocks.AlertService
	notifier   *mocks.NotificationService
	svc        ReturnService
}

func newReturnFixture() *returnFixture {
	f := &returnFixture{
		returnRepo: new(mocks.ReturnRepository),
		rentalRepo: new(mocks.RentalRepository),
		carRepo:    new(mocks.CarRepository),
		auditRepo:  new(mocks.AuditLogRepository),
		alerts:     new(mocks.AlertService),
		notifier:   new(mocks.NotificationService),
	}
	f.svc = NewReturnService(f.returnRepo, f.rentalRepo, f.carRepo, f.auditRepo, f.alerts, f.notifier, testLogger())
	return f
}

func activeRentalAndCar() (*domain.Rental, *domain.Car) {
	carID := uuid.New()
	rental := &domain.Rental{
		ID:       uuid.New(),
		ClientID: uuid.New(),
		CarID:    carID,
		Status:   domain.RentalActive,
	}
	car := &domain.Car{
		ID:    carID,
		Brand: "Toyota",
		Model: "Corolla",
		Plate: "ABC-123",
	}
	return rental, car
}

func validReturnInput(rental *domain.Rental, condition domain.VehicleCondition) domain.CreateReturnInput {
	return domain.CreateReturnInput{
		RentalID:   rental.ID,
		CarID:      rental.CarID,
		ReturnedAt: time.Now(),
		Condition:  condition,
		ReceivedBy: "Ana Torres",
	}
}

func TestReturnIntake_GoodConditionNoSideEffects(t *testing.T) {
	f := newReturnFixture()
	rental, car := activeRentalAndCar()

	f.rentalRepo.On("GetByID", mock.Anything, rental.ID).Return(rental, nil)
	f.carRepo.On("GetByID", mock.Anything, car.ID).Return(car, nil)
	f.returnRepo.On("CreateWithRentalClosure", mock.Anything, mock.AnythingOfType("*domain.Return")).Return(nil)
	f.auditRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.AuditLog")).Return(nil)

	ret, err := f.svc.Intake(context.Background(), uuid.New(), validReturnInput(rental, domain.ConditionGood), nil)

	require.NoError(t, err)
	require.NotNil(t, ret)
	assert.Equal(t, domain.ConditionGood, ret.Condition)
	f.alerts.AssertNotCalled(t, "EmitConditionAlert", mock.Anything, mock.Anything, mock.Anything)
	f.notifier.AssertNotCalled(t, "NotifyEmployees", mock.Anything, mock.Anything)
	f.returnRepo.AssertExpectations(t)
}

func TestReturnIntake_ExcellentConditionNoSideEffects(t *testing.T) {
	f := newReturnFixture()
	rental, car := activeRentalAndCar()

	f.rentalRepo.On("GetByID", mock.Anything, rental.ID).Return(rental, nil)
	f.carRepo.On("GetByID", mock.Anything, car.ID).Return(car, nil)
	f.returnRepo.On("CreateWithRentalClosure", mock.Anything, mock.AnythingOfType("*domain.Return")).Return(nil)
	f.auditRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.AuditLog")).Return(nil)

	_, err := f.svc.Intake(context.Background(), uuid.New(), validReturnInput(rental, domain.ConditionExcellent), nil)

	require.NoError(t, err)
	f.alerts.AssertNotCalled(t, "EmitConditionAlert", mock.Anything, mock.Anything, mock.Anything)
	f.notifier.AssertNotCalled(t, "NotifyEmployees", mock.Anything, mock.Anything)
}

func TestReturnIntake_BadConditionTriggersAlertAndNotifications(t *testing.T) {
	f := newReturnFixture()
	rental, car := activeRentalAndCar()

	f.rentalRepo.On("GetByID", mock.Anything, rental.ID).Return(rental, nil)
	f.carRepo.On("GetByID", mock.Anything, car.ID).Return(car, nil)
	f.returnRepo.On("CreateWithRentalClosure", mock.Anything, mock.AnythingOfType("*domain.Return")).Return(nil)
	f.auditRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.AuditLog")).Return(nil)
	f.alerts.On("EmitConditionAlert", mock.Anything, car, mock.AnythingOfType("*domain.Return")).Return(nil)
	f.notifier.On("NotifyEmployees", mock.Anything, mock.MatchedBy(func(event domain.ReturnEvent) bool {
		return event.Car == car && event.Return.Condition == domain.ConditionBad
	})).Return(nil)

	input := validReturnInput(rental, domain.ConditionBad)
	notes := "scratched rear bumper"
	input.Notes = &notes

	ret, err := f.svc.Intake(context.Background(), uuid.New(), input, nil)

	require.NoError(t, err)
	require.NotNil(t, ret)
	f.alerts.AssertNumberOfCalls(t, "EmitConditionAlert", 1)
	f.notifier.AssertNumberOfCalls(t, "NotifyEmployees", 1)
}

func TestReturnIntake_RegularConditionTriggersAlert(t *testing.T) {
	f := newReturnFixture()
	rental, car := activeRentalAndCar()

	f.rentalRepo.On("GetByID", mock.Anything, rental.ID).Return(rental, nil)
	f.carRepo.On("GetByID", mock.Anything, car.ID).Return(car, nil)
	f.returnRepo.On("CreateWithRentalClosure", mock.Anything, mock.AnythingOfType("*domain.Return")).Return(nil)
	f.auditRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.AuditLog")).Return(nil)
	f.alerts.On("EmitConditionAlert", mock.Anything, car, mock.AnythingOfType("*domain.Return")).Return(nil)
	f.notifier.On("NotifyEmployees", mock.Anything, mock.AnythingOfType("domain.ReturnEvent")).Return(nil)

	_, err := f.svc.Intake(context.Background(), uuid.New(), validReturnInput(rental, domain.ConditionRegular), nil)

	require.NoError(t, err)
	f.alerts.AssertNumberOfCalls(t, "EmitConditionAlert", 1)
	f.notifier.AssertNumberOfCalls(t, "NotifyEmployees", 1)
}

func TestReturnIntake_UnknownRental(t *testing.T) {
	f := newReturnFixture()
	rental, _ := activeRentalAndCar()

	f.rentalRepo.On("GetByID", mock.Anything, rental.ID).Return(nil, nil)

	_, err := f.svc.Intake(context.Background(), uuid.New(), validReturnInput(rental, domain.ConditionGood), nil)

	assert.ErrorIs(t, err, domain.ErrRentalNotFound)
	f.returnRepo.AssertNotCalled(t, "CreateWithRentalClosure", mock.Anything, mock.Anything)
}

func TestReturnIntake_UnknownCar(t *testing.T) {
	f := newReturnFixture()
	rental, car := activeRentalAndCar()

	f.rentalRepo.On("GetByID", mock.Anything, rental.ID).Return(rental, nil)
	f.carRepo.On("GetByID", mock.Anything, car.ID).Return(nil, nil)

	_, err := f.svc.Intake(context.Background(), uuid.New(), validReturnInput(rental, domain.ConditionGood), nil)

	assert.ErrorIs(t, err, domain.ErrCarNotFound)
	f.returnRepo.AssertNotCalled(t, "CreateWithRentalClosure", mock.Anything, mock.Anything)
}

func TestReturnIntake_CompletedRentalRejected(t *testing.T) {
	f := newReturnFixture()
	rental, car := activeRentalAndCar()
	rental.Status = domain.RentalCompleted

	f.rentalRepo.On("GetByID", mock.Anything, rental.ID).Return(rental, nil)
	f.carRepo.On("GetByID", mock.Anything, car.ID).Return(car, nil)

	_, err := f.svc.Intake(context.Background(), uuid.New(), validReturnInput(rental, domain.ConditionGood), nil)

	assert.ErrorIs(t, err, domain.ErrRentalNotActive)
	f.returnRepo.AssertNotCalled(t, "CreateWithRentalClosure", mock.Anything, mock.Anything)
}

func TestReturnIntake_MissingReceivedBy(t *testing.T) {
	f := newReturnFixture()
	rental, _ := activeRentalAndCar()

	input := validReturnInput(rental, domain.ConditionGood)
	input.ReceivedBy = ""

	_, err := f.svc.Intake(context.Background(), uuid.New(), input, nil)

	assert.ErrorIs(t, err, domain.ErrValidation)
	f.rentalRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestReturnIntake_InvalidCondition(t *testing.T) {
	f := newReturnFixture()
	rental, _ := activeRentalAndCar()

	_, err := f.svc.Intake(context.Background(), uuid.New(), validReturnInput(rental, domain.VehicleCondition("pristine")), nil)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReturnIntake_SideEffectFailureDoesNotFailReturn(t *testing.T) {
	f := newReturnFixture()
	rental, car := activeRentalAndCar()

	f.rentalRepo.On("GetByID", mock.Anything, rental.ID).Return(rental, nil)
	f.carRepo.On("GetByID", mock.Anything, car.ID).Return(car, nil)
	f.returnRepo.On("CreateWithRentalClosure", mock.Anything, mock.AnythingOfType("*domain.Return")).Return(nil)
	f.auditRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.AuditLog")).Return(nil)
	f.alerts.On("EmitConditionAlert", mock.Anything, car, mock.AnythingOfType("*domain.Return")).Return(errors.New("alert store down"))
	f.notifier.On("NotifyEmployees", mock.Anything, mock.AnythingOfType("domain.ReturnEvent")).Return(errors.New("notification store down"))

	ret, err := f.svc.Intake(context.Background(), uuid.New(), validReturnInput(rental, domain.ConditionBad), nil)

	require.NoError(t, err)
	require.NotNil(t, ret)
}

func TestReturnIntake_StoreFailureSurfaces(t *testing.T) {
	f := newReturnFixture()
	rental, car := activeRentalAndCar()

	f.rentalRepo.On("GetByID", mock.Anything, rental.ID).Return(rental, nil)
	f.carRepo.On("GetByID", mock.Anything, car.ID).Return(car, nil)
	f.returnRepo.On("CreateWithRentalClosure", mock.Anything, mock.AnythingOfType("*domain.Return")).Return(errors.New("tx aborted"))

	_, err := f.svc.Intake(context.Background(), uuid.New(), validReturnInput(rental, domain.ConditionBad), nil)

	require.Error(t, err)
	f.alerts.AssertNotCalled(t, "EmitConditionAlert", mock.Anything, mock.Anything, mock.Anything)
	f.notifier.AssertNotCalled(t, "NotifyEmployees", mock.Anything, mock.Anything)
}

func TestReturnGetByID_NotFound(t *testing.T) {
	f := newReturnFixture()
	id := uuid.New()

	f.returnRepo.On("GetByID", mock.Anything, id).Return(nil, nil)

	_, err := f.svc.GetByID(context.Background(), id)

	assert.ErrorIs(t, err, domain.ErrReturnNotFound)
}
