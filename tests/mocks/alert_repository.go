package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"renta-autos/internal/domain"
)

type AlertRepository struct {
	mock.Mock
}

func (m *AlertRepository) Create(ctx context.Context, alert *domain.Alert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

func (m *AlertRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Alert, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Alert), args.Error(1)
}

func (m *AlertRepository) List(ctx context.Context, resolved *bool, params domain.PaginationParams) ([]domain.Alert, int64, error) {
	args := m.Called(ctx, resolved, params)
	return args.Get(0).([]domain.Alert), args.Get(1).(int64), args.Error(2)
}

func (m *AlertRepository) Resolve(ctx context.Context, id uuid.UUID, resolvedBy uuid.UUID) error {
	args := m.Called(ctx, id, resolvedBy)
	return args.Error(0)
}

func (m *AlertRepository) CountUnresolved(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
