package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"renta-autos/internal/domain"
	"renta-autos/internal/repository"
)

type RepairService interface {
	Open(ctx context.Context, actorID uuid.UUID, input domain.CreateRepairInput) (*domain.Repair, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Repair, error)
	List(ctx context.Context, status *domain.RepairStatus, params domain.PaginationParams) (domain.PaginatedResponse[domain.Repair], error)
	Complete(ctx context.Context, id uuid.UUID) error
}

type repairService struct {
	repairRepo repository.RepairRepository
	carRepo    repository.CarRepository
	notifRepo  repository.NotificationRepository
	log        *logrus.Logger
}

func NewRepairService(
	repairRepo repository.RepairRepository,
	carRepo repository.CarRepository,
	notifRepo repository.NotificationRepository,
	log *logrus.Logger,
) RepairService {
	return &repairService{
		repairRepo: repairRepo,
		carRepo:    carRepo,
		notifRepo:  notifRepo,
		log:        log,
	}
}

func (s *repairService) Open(ctx context.Context, actorID uuid.UUID, input domain.CreateRepairInput) (*domain.Repair, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	car, err := s.carRepo.GetByID(ctx, input.CarID)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, domain.ErrCarNotFound
	}

	repair := &domain.Repair{
		ID:          uuid.New(),
		CarID:       car.ID,
		Description: input.Description,
		Cost:        input.Cost,
		Status:      domain.RepairOpen,
		OpenedBy:    actorID,
	}

	if err := s.repairRepo.Create(ctx, repair); err != nil {
		return nil, err
	}

	// Cars under repair cannot be rented out.
	if err := s.carRepo.SetAvailability(ctx, car.ID, false); err != nil {
		return nil, err
	}

	return repair, nil
}

func (s *repairService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Repair, error) {
	repair, err := s.repairRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if repair == nil {
		return nil, domain.ErrRepairNotFound
	}
	return repair, nil
}

func (s *repairService) List(ctx context.Context, status *domain.RepairStatus, params domain.PaginationParams) (domain.PaginatedResponse[domain.Repair], error) {
	repairs, total, err := s.repairRepo.List(ctx, status, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Repair]{}, err
	}

	return domain.NewPaginatedResponse(repairs, params.Page, params.PageSize, total), nil
}

func (s *repairService) Complete(ctx context.Context, id uuid.UUID) error {
	repair, err := s.repairRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if repair == nil {
		return domain.ErrRepairNotFound
	}
	if repair.Status != domain.RepairOpen {
		return domain.ErrRepairNotOpen
	}

	if err := s.repairRepo.Complete(ctx, id); err != nil {
		return err
	}

	if err := s.carRepo.SetAvailability(ctx, repair.CarID, true); err != nil {
		return err
	}

	notif := &domain.Notification{
		ID:      uuid.New(),
		UserID:  repair.OpenedBy,
		Type:    domain.NotifRepairCompleted,
		Title:   "repair completed",
		Message: fmt.Sprintf("repair finished: %s", repair.Description),
	}
	if err := s.notifRepo.Create(ctx, notif); err != nil {
		s.log.WithError(err).WithField("repair_id", repair.ID).
			Warn("failed to create repair notification")
	}

	return nil
}
