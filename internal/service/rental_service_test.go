package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"renta-autos/internal/domain"
	"renta-autos/tests/mocks"
)

type rentalFixture struct {
	rentalRepo *mocks.RentalRepository
	carRepo    *mocks.CarRepository
	clientRepo *mocks.ClientRepository
	auditRepo  *mocks.AuditLogRepository
	svc        RentalService
}

func newRentalFixture() *rentalFixture {
	f := &rentalFixture{
		rentalRepo: new(mocks.RentalRepository),
		carRepo:    new(mocks.CarRepository),
		clientRepo: new(mocks.ClientRepository),
		auditRepo:  new(mocks.AuditLogRepository),
	}
	f.svc = NewRentalService(f.rentalRepo, f.carRepo, f.clientRepo, f.auditRepo, testLogger())
	return f
}

func validRentalInput(clientID, carID uuid.UUID) domain.CreateRentalInput {
	start := time.Now()
	return domain.CreateRentalInput{
		ClientID:   clientID,
		CarID:      carID,
		StartDate:  start,
		EndDate:    start.Add(72 * time.Hour),
		TotalPrice: 450,
	}
}

func TestRentalCreate_MarksCarUnavailable(t *testing.T) {
	f := newRentalFixture()
	client := &domain.Client{ID: uuid.New(), IsActive: true}
	car := &domain.Car{ID: uuid.New(), Available: true}

	f.clientRepo.On("GetByID", mock.Anything, client.ID).Return(client, nil)
	f.carRepo.On("GetByID", mock.Anything, car.ID).Return(car, nil)
	f.rentalRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Rental")).Return(nil)
	f.carRepo.On("SetAvailability", mock.Anything, car.ID, false).Return(nil)
	f.auditRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.AuditLog")).Return(nil)

	rental, err := f.svc.Create(context.Background(), uuid.New(), validRentalInput(client.ID, car.ID), nil)

	require.NoError(t, err)
	require.NotNil(t, rental)
	assert.Equal(t, domain.RentalActive, rental.Status)
	f.carRepo.AssertCalled(t, "SetAvailability", mock.Anything, car.ID, false)
}

func TestRentalCreate_UnavailableCarRejected(t *testing.T) {
	f := newRentalFixture()
	client := &domain.Client{ID: uuid.New(), IsActive: true}
	car := &domain.Car{ID: uuid.New(), Available: false}

	f.clientRepo.On("GetByID", mock.Anything, client.ID).Return(client, nil)
	f.carRepo.On("GetByID", mock.Anything, car.ID).Return(car, nil)

	_, err := f.svc.Create(context.Background(), uuid.New(), validRentalInput(client.ID, car.ID), nil)

	assert.ErrorIs(t, err, domain.ErrCarUnavailable)
	f.rentalRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRentalCreate_InactiveClientRejected(t *testing.T) {
	f := newRentalFixture()
	client := &domain.Client{ID: uuid.New(), IsActive: false}

	f.clientRepo.On("GetByID", mock.Anything, client.ID).Return(client, nil)

	_, err := f.svc.Create(context.Background(), uuid.New(), validRentalInput(client.ID, uuid.New()), nil)

	assert.ErrorIs(t, err, domain.ErrClientInactive)
}

func TestRentalCreate_EndBeforeStart(t *testing.T) {
	f := newRentalFixture()

	input := validRentalInput(uuid.New(), uuid.New())
	input.EndDate = input.StartDate.Add(-time.Hour)

	_, err := f.svc.Create(context.Background(), uuid.New(), input, nil)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRentalCancel_FreesCar(t *testing.T) {
	f := newRentalFixture()
	rental := &domain.Rental{ID: uuid.New(), CarID: uuid.New(), Status: domain.RentalActive}

	f.rentalRepo.On("GetByID", mock.Anything, rental.ID).Return(rental, nil)
	f.rentalRepo.On("SetStatus", mock.Anything, rental.ID, domain.RentalCancelled).Return(nil)
	f.carRepo.On("SetAvailability", mock.Anything, rental.CarID, true).Return(nil)

	err := f.svc.Cancel(context.Background(), rental.ID)

	require.NoError(t, err)
	f.rentalRepo.AssertExpectations(t)
	f.carRepo.AssertExpectations(t)
}

func TestRentalCancel_CompletedRejected(t *testing.T) {
	f := newRentalFixture()
	rental := &domain.Rental{ID: uuid.New(), CarID: uuid.New(), Status: domain.RentalCompleted}

	f.rentalRepo.On("GetByID", mock.Anything, rental.ID).Return(rental, nil)

	err := f.svc.Cancel(context.Background(), rental.ID)

	assert.ErrorIs(t, err, domain.ErrRentalNotActive)
	f.rentalRepo.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
}
