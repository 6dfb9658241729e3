package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"renta-autos/internal/domain"
)

type RentalRepository struct {
	mock.Mock
}

func (m *RentalRepository) Create(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}

func (m *RentalRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *RentalRepository) List(ctx context.Context, status *domain.RentalStatus, params domain.PaginationParams) ([]domain.Rental, int64, error) {
	args := m.Called(ctx, status, params)
	return args.Get(0).([]domain.Rental), args.Get(1).(int64), args.Error(2)
}

func (m *RentalRepository) SetStatus(ctx context.Context, id uuid.UUID, status domain.RentalStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *RentalRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *RentalRepository) SumRevenueSince(ctx context.Context, since time.Time) (float64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(float64), args.Error(1)
}
