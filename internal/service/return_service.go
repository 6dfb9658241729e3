package service

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"renta-autos/internal/domain"
	"renta-autos/internal/repository"
)

// ReturnService is the intake point of the return cascade: it validates
// the referenced rental and car, closes the rental transactionally and
// then triggers the alert and notification side effects. The side
// effects are best-effort; their failures are logged and never surfaced
// to the caller.
type ReturnService interface {
	Intake(ctx context.Context, actorID uuid.UUID, input domain.CreateReturnInput, meta *RequestMeta) (*domain.Return, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ReturnWithDetails, error)
	List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.ReturnWithDetails], error)
}

type returnService struct {
	returnRepo repository.ReturnRepository
	rentalRepo repository.RentalRepository
	carRepo    repository.CarRepository
	auditRepo  repository.AuditLogRepository
	alerts     AlertService
	notifier   NotificationService
	log        *logrus.Logger
}

func NewReturnService(
	returnRepo repository.ReturnRepository,
	rentalRepo repository.RentalRepository,
	carRepo repository.CarRepository,
	auditRepo repository.AuditLogRepository,
	alerts AlertService,
	notifier NotificationService,
	log *logrus.Logger,
) ReturnService {
	return &returnService{
		returnRepo: returnRepo,
		rentalRepo: rentalRepo,
		carRepo:    carRepo,
		auditRepo:  auditRepo,
		alerts:     alerts,
		notifier:   notifier,
		log:        log,
	}
}

func (s *returnService) Intake(ctx context.Context, actorID uuid.UUID, input domain.CreateReturnInput, meta *RequestMeta) (*domain.Return, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	rental, err := s.rentalRepo.GetByID(ctx, input.RentalID)
	if err != nil {
		return nil, err
	}
	if rental == nil {
		return nil, domain.ErrRentalNotFound
	}

	car, err := s.carRepo.GetByID(ctx, input.CarID)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, domain.ErrCarNotFound
	}

	// Completed and cancelled rentals cannot be returned again, which
	// also makes a duplicate submission of the same payload a 409
	// instead of a second return row.
	if rental.Status != domain.RentalActive {
		return nil, domain.ErrRentalNotActive
	}

	ret := &domain.Return{
		ID:         uuid.New(),
		RentalID:   rental.ID,
		CarID:      car.ID,
		ReturnedAt: input.ReturnedAt,
		Condition:  input.Condition,
		Notes:      input.Notes,
		ReceivedBy: input.ReceivedBy,
	}

	if err := s.returnRepo.CreateWithRentalClosure(ctx, ret); err != nil {
		return nil, err
	}

	if ret.Condition.Alertworthy() {
		if err := s.alerts.EmitConditionAlert(ctx, car, ret); err != nil {
			s.log.WithError(err).WithField("return_id", ret.ID).
				Warn("failed to create condition alert")
		}

		event := domain.ReturnEvent{Return: ret, Car: car}
		if err := s.notifier.NotifyEmployees(ctx, event); err != nil {
			s.log.WithError(err).WithField("return_id", ret.ID).
				Warn("failed to fan out return notifications")
		}
	}

	s.audit(ctx, actorID, ret, meta)

	return ret, nil
}

func (s *returnService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ReturnWithDetails, error) {
	ret, err := s.returnRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ret == nil {
		return nil, domain.ErrReturnNotFound
	}
	return ret, nil
}

func (s *returnService) List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.ReturnWithDetails], error) {
	returns, total, err := s.returnRepo.List(ctx, params)
	if err != nil {
		return domain.PaginatedResponse[domain.ReturnWithDetails]{}, err
	}

	return domain.NewPaginatedResponse(returns, params.Page, params.PageSize, total), nil
}

func (s *returnService) audit(ctx context.Context, actorID uuid.UUID, ret *domain.Return, meta *RequestMeta) {
	newValue, _ := json.Marshal(ret)

	entry := &domain.AuditLog{
		ID:         uuid.New(),
		UserID:     actorID,
		Action:     "CREATE",
		EntityType: "RETURN",
		EntityID:   ret.ID,
		NewValue:   newValue,
	}
	if meta != nil {
		entry.IPAddress = meta.IPAddress
		entry.UserAgent = meta.UserAgent
	}

	if err := s.auditRepo.Create(ctx, entry); err != nil {
		s.log.WithError(err).WithField("return_id", ret.ID).
			Warn("failed to write audit log")
	}
}
