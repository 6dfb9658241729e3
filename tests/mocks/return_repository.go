package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"renta-autos/internal/domain"
)

type ReturnRepository struct {
	mock.Mock
}

func (m *ReturnRepository) CreateWithRentalClosure(ctx context.Context, ret *domain.Return) error {
	args := m.Called(ctx, ret)
	return args.Error(0)
}

func (m *ReturnRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ReturnWithDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReturnWithDetails), args.Error(1)
}

func (m *ReturnRepository) List(ctx context.Context, params domain.PaginationParams) ([]domain.ReturnWithDetails, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]domain.ReturnWithDetails), args.Get(1).(int64), args.Error(2)
}
