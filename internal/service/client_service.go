package service

import (
	"context"

	"github.com/google/uuid"

	"renta-autos/internal/domain"
	"renta-autos/internal/repository"
)

type ClientService interface {
	Create(ctx context.Context, input domain.CreateClientInput) (*domain.Client, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.Client], error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdateClientInput) (*domain.Client, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type clientService struct {
	clientRepo repository.ClientRepository
}

func NewClientService(clientRepo repository.ClientRepository) ClientService {
	return &clientService{clientRepo: clientRepo}
}

func (s *clientService) Create(ctx context.Context, input domain.CreateClientInput) (*domain.Client, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.clientRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailExists
	}

	client := &domain.Client{
		ID:            uuid.New(),
		FullName:      input.FullName,
		Email:         input.Email,
		Phone:         input.Phone,
		LicenseNumber: input.LicenseNumber,
		IsActive:      true,
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *clientService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	return client, nil
}

func (s *clientService) List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.Client], error) {
	clients, total, err := s.clientRepo.List(ctx, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Client]{}, err
	}

	return domain.NewPaginatedResponse(clients, params.Page, params.PageSize, total), nil
}

func (s *clientService) Update(ctx context.Context, id uuid.UUID, input domain.UpdateClientInput) (*domain.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}

	if input.FullName != nil {
		client.FullName = *input.FullName
	}
	if input.Email != nil {
		client.Email = *input.Email
	}
	if input.Phone != nil {
		client.Phone = input.Phone
	}
	if input.LicenseNumber != nil {
		client.LicenseNumber = *input.LicenseNumber
	}
	if input.IsActive != nil {
		client.IsActive = *input.IsActive
	}

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *clientService) Delete(ctx context.Context, id uuid.UUID) error {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrClientNotFound
	}

	return s.clientRepo.Delete(ctx, id)
}
