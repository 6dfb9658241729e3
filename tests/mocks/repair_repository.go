package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"renta-autos/internal/domain"
)

type RepairRepository struct {
	mock.Mock
}

func (m *RepairRepository) Create(ctx context.Context, repair *domain.Repair) error {
	args := m.Called(ctx, repair)
	return args.Error(0)
}

func (m *RepairRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Repair, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Repair), args.Error(1)
}

func (m *RepairRepository) List(ctx context.Context, status *domain.RepairStatus, params domain.PaginationParams) ([]domain.Repair, int64, error) {
	args := m.Called(ctx, status, params)
	return args.Get(0).([]domain.Repair), args.Get(1).(int64), args.Error(2)
}

func (m *RepairRepository) Complete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *RepairRepository) CountOpen(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
