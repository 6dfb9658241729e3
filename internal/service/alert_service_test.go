package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"renta-autos/internal/domain"
	"renta-autos/tests/mocks"
)

func TestEmitConditionAlert_BadWithNotes(t *testing.T) {
	alertRepo := new(mocks.AlertRepository)
	svc := NewAlertService(alertRepo)

	car := &domain.Car{ID: uuid.New(), Brand: "Nissan", Model: "Versa", Plate: "XYZ-987"}
	notes := "engine overheating"
	ret := &domain.Return{
		ID:         uuid.New(),
		CarID:      car.ID,
		Condition:  domain.ConditionBad,
		Notes:      &notes,
		ReceivedBy: "Luis Mora",
	}

	var captured *domain.Alert
	alertRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Alert")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*domain.Alert)
		}).Return(nil)

	err := svc.EmitConditionAlert(context.Background(), car, ret)

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, car.ID, captured.CarID)
	assert.Equal(t, domain.AlertVehicleCondition, captured.Category)
	assert.Equal(t, domain.SeverityHigh, captured.Severity)
	assert.Equal(t, "vehicle returned in BAD condition: engine overheating", captured.Message)
	assert.Equal(t, "Luis Mora", captured.CreatedBy)
	assert.False(t, captured.Resolved)
}

func TestEmitConditionAlert_RegularWithoutNotes(t *testing.T) {
	alertRepo := new(mocks.AlertRepository)
	svc := NewAlertService(alertRepo)

	car := &domain.Car{ID: uuid.New(), Brand: "Kia", Model: "Rio", Plate: "KIA-001"}
	ret := &domain.Return{
		ID:         uuid.New(),
		CarID:      car.ID,
		Condition:  domain.ConditionRegular,
		ReceivedBy: "Ana Torres",
	}

	var captured *domain.Alert
	alertRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Alert")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*domain.Alert)
		}).Return(nil)

	err := svc.EmitConditionAlert(context.Background(), car, ret)

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, domain.SeverityMedium, captured.Severity)
	assert.Equal(t, "vehicle returned in REGULAR condition: no additional details provided", captured.Message)
}

func TestResolveAlert_NotFound(t *testing.T) {
	alertRepo := new(mocks.AlertRepository)
	svc := NewAlertService(alertRepo)
	id := uuid.New()

	alertRepo.On("GetByID", mock.Anything, id).Return(nil, nil)

	err := svc.Resolve(context.Background(), id, uuid.New())

	assert.ErrorIs(t, err, domain.ErrAlertNotFound)
}

func TestResolveAlert_AlreadyResolved(t *testing.T) {
	alertRepo := new(mocks.AlertRepository)
	svc := NewAlertService(alertRepo)
	id := uuid.New()

	alertRepo.On("GetByID", mock.Anything, id).Return(&domain.Alert{ID: id, Resolved: true}, nil)

	err := svc.Resolve(context.Background(), id, uuid.New())

	assert.ErrorIs(t, err, domain.ErrAlertResolved)
	alertRepo.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything, mock.Anything)
}

func TestResolveAlert_Success(t *testing.T) {
	alertRepo := new(mocks.AlertRepository)
	svc := NewAlertService(alertRepo)
	id := uuid.New()
	resolver := uuid.New()

	alertRepo.On("GetByID", mock.Anything, id).Return(&domain.Alert{ID: id}, nil)
	alertRepo.On("Resolve", mock.Anything, id, resolver).Return(nil)

	err := svc.Resolve(context.Background(), id, resolver)

	require.NoError(t, err)
	alertRepo.AssertExpectations(t)
}
