package service

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"renta-autos/internal/domain"
	"renta-autos/internal/repository"
)

type RentalService interface {
	Create(ctx context.Context, actorID uuid.UUID, input domain.CreateRentalInput, meta *RequestMeta) (*domain.Rental, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Rental, error)
	List(ctx context.Context, status *domain.RentalStatus, params domain.PaginationParams) (domain.PaginatedResponse[domain.Rental], error)
	Cancel(ctx context.Context, id uuid.UUID) error
}

type rentalService struct {
	rentalRepo repository.RentalRepository
	carRepo    repository.CarRepository
	clientRepo repository.ClientRepository
	auditRepo  repository.AuditLogRepository
	log        *logrus.Logger
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	carRepo repository.CarRepository,
	clientRepo repository.ClientRepository,
	auditRepo repository.AuditLogRepository,
	log *logrus.Logger,
) RentalService {
	return &rentalService{
		rentalRepo: rentalRepo,
		carRepo:    carRepo,
		clientRepo: clientRepo,
		auditRepo:  auditRepo,
		log:        log,
	}
}

func (s *rentalService) Create(ctx context.Context, actorID uuid.UUID, input domain.CreateRentalInput, meta *RequestMeta) (*domain.Rental, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	client, err := s.clientRepo.GetByID(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	if !client.IsActive {
		return nil, domain.ErrClientInactive
	}

	car, err := s.carRepo.GetByID(ctx, input.CarID)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, domain.ErrCarNotFound
	}
	if !car.Available {
		return nil, domain.ErrCarUnavailable
	}

	rental := &domain.Rental{
		ID:         uuid.New(),
		ClientID:   client.ID,
		CarID:      car.ID,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		TotalPrice: input.TotalPrice,
		Status:     domain.RentalActive,
		CreatedBy:  actorID,
	}

	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, err
	}

	// An active rental implies the car is off the lot.
	if err := s.carRepo.SetAvailability(ctx, car.ID, false); err != nil {
		return nil, err
	}

	newValue, _ := json.Marshal(rental)
	entry := &domain.AuditLog{
		ID:         uuid.New(),
		UserID:     actorID,
		Action:     "CREATE",
		EntityType: "RENTAL",
		EntityID:   rental.ID,
		NewValue:   newValue,
	}
	if meta != nil {
		entry.IPAddress = meta.IPAddress
		entry.UserAgent = meta.UserAgent
	}
	if err := s.auditRepo.Create(ctx, entry); err != nil {
		s.log.WithError(err).WithField("rental_id", rental.ID).
			Warn("failed to write audit log")
	}

	return rental, nil
}

func (s *rentalService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rental == nil {
		return nil, domain.ErrRentalNotFound
	}
	return rental, nil
}

func (s *rentalService) List(ctx context.Context, status *domain.RentalStatus, params domain.PaginationParams) (domain.PaginatedResponse[domain.Rental], error) {
	rentals, total, err := s.rentalRepo.List(ctx, status, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Rental]{}, err
	}

	return domain.NewPaginatedResponse(rentals, params.Page, params.PageSize, total), nil
}

func (s *rentalService) Cancel(ctx context.Context, id uuid.UUID) error {
	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rental == nil {
		return domain.ErrRentalNotFound
	}
	if rental.Status != domain.RentalActive {
		return domain.ErrRentalNotActive
	}

	if err := s.rentalRepo.SetStatus(ctx, id, domain.RentalCancelled); err != nil {
		return err
	}

	return s.carRepo.SetAvailability(ctx, rental.CarID, true)
}
