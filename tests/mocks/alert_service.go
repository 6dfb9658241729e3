package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"renta-autos/internal/domain"
)

type AlertService struct {
	mock.Mock
}

func (m *AlertService) EmitConditionAlert(ctx context.Context, car *domain.Car, ret *domain.Return) error {
	args := m.Called(ctx, car, ret)
	return args.Error(0)
}

func (m *AlertService) List(ctx context.Context, resolved *bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Alert], error) {
	args := m.Called(ctx, resolved, params)
	return args.Get(0).(domain.PaginatedResponse[domain.Alert]), args.Error(1)
}

func (m *AlertService) Resolve(ctx context.Context, id uuid.UUID, resolvedBy uuid.UUID) error {
	args := m.Called(ctx, id, resolvedBy)
	return args.Error(0)
}
