package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"renta-autos/internal/domain"
	"renta-autos/internal/repository"
)

const defaultAlertDetail = "no additional details provided"

type AlertService interface {
	// EmitConditionAlert persists one alert for a vehicle returned in
	// regular or bad condition. No dedupe: two bad returns of the same
	// car raise two alerts.
	EmitConditionAlert(ctx context.Context, car *domain.Car, ret *domain.Return) error
	List(ctx context.Context, resolved *bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Alert], error)
	Resolve(ctx context.Context, id uuid.UUID, resolvedBy uuid.UUID) error
}

type alertService struct {
	alertRepo repository.AlertRepository
}

func NewAlertService(alertRepo repository.AlertRepository) AlertService {
	return &alertService{alertRepo: alertRepo}
}

func (s *alertService) EmitConditionAlert(ctx context.Context, car *domain.Car, ret *domain.Return) error {
	detail := defaultAlertDetail
	if ret.Notes != nil && *ret.Notes != "" {
		detail = *ret.Notes
	}

	alert := &domain.Alert{
		ID:        uuid.New(),
		CarID:     car.ID,
		Category:  domain.AlertVehicleCondition,
		Message:   fmt.Sprintf("vehicle returned in %s condition: %s", strings.ToUpper(string(ret.Condition)), detail),
		Severity:  domain.SeverityForCondition(ret.Condition),
		CreatedBy: ret.ReceivedBy,
		Resolved:  false,
	}

	return s.alertRepo.Create(ctx, alert)
}

func (s *alertService) List(ctx context.Context, resolved *bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Alert], error) {
	alerts, total, err := s.alertRepo.List(ctx, resolved, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Alert]{}, err
	}

	return domain.NewPaginatedResponse(alerts, params.Page, params.PageSize, total), nil
}

func (s *alertService) Resolve(ctx context.Context, id uuid.UUID, resolvedBy uuid.UUID) error {
	alert, err := s.alertRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if alert == nil {
		return domain.ErrAlertNotFound
	}
	if alert.Resolved {
		return domain.ErrAlertResolved
	}

	return s.alertRepo.Resolve(ctx, id, resolvedBy)
}
