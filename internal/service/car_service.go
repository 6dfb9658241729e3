package service

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"renta-autos/internal/config"
	"renta-autos/internal/domain"
	"renta-autos/internal/repository"
)

type CarService interface {
	Create(ctx context.Context, input domain.CreateCarInput) (*domain.Car, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Car, error)
	List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.Car], error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdateCarInput) (*domain.Car, error)
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) error
	UploadPhoto(ctx context.Context, id uuid.UUID, fileName, mimeType string, fileSize int64, reader io.Reader) (*domain.Car, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type carService struct {
	carRepo     repository.CarRepository
	minioClient *minio.Client
	cfg         *config.Config
}

func NewCarService(carRepo repository.CarRepository, minioClient *minio.Client, cfg *config.Config) CarService {
	return &carService{
		carRepo:     carRepo,
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (s *carService) Create(ctx context.Context, input domain.CreateCarInput) (*domain.Car, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.carRepo.GetByPlate(ctx, input.Plate)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrPlateExists
	}

	intakeDate := time.Now()
	if input.IntakeDate != nil {
		intakeDate = *input.IntakeDate
	}

	car := &domain.Car{
		ID:         uuid.New(),
		Brand:      input.Brand,
		Model:      input.Model,
		Year:       input.Year,
		Plate:      input.Plate,
		Category:   input.Category,
		OdometerKm: input.OdometerKm,
		Available:  true,
		IntakeDate: intakeDate,
	}

	if err := s.carRepo.Create(ctx, car); err != nil {
		return nil, err
	}
	return car, nil
}

func (s *carService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Car, error) {
	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, domain.ErrCarNotFound
	}
	return car, nil
}

func (s *carService) List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.Car], error) {
	cars, total, err := s.carRepo.List(ctx, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Car]{}, err
	}

	return domain.NewPaginatedResponse(cars, params.Page, params.PageSize, total), nil
}

func (s *carService) Update(ctx context.Context, id uuid.UUID, input domain.UpdateCarInput) (*domain.Car, error) {
	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, domain.ErrCarNotFound
	}

	if input.Brand != nil {
		car.Brand = *input.Brand
	}
	if input.Model != nil {
		car.Model = *input.Model
	}
	if input.Year != nil {
		car.Year = *input.Year
	}
	if input.Category != nil {
		car.Category = *input.Category
	}
	if input.OdometerKm != nil {
		car.OdometerKm = *input.OdometerKm
	}

	if err := s.carRepo.Update(ctx, car); err != nil {
		return nil, err
	}
	return car, nil
}

func (s *carService) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if car == nil {
		return domain.ErrCarNotFound
	}

	return s.carRepo.SetAvailability(ctx, id, available)
}

func (s *carService) UploadPhoto(ctx context.Context, id uuid.UUID, fileName, mimeType string, fileSize int64, reader io.Reader) (*domain.Car, error) {
	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, domain.ErrCarNotFound
	}

	storagePath := fmt.Sprintf("cars/%s/%s", car.ID, fileName)

	_, err = s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, storagePath, reader, fileSize, minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to MinIO: %w", err)
	}

	photoURL := s.getPublicURL(storagePath)
	if err := s.carRepo.SetPhotoURL(ctx, car.ID, photoURL); err != nil {
		_ = s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, storagePath, minio.RemoveObjectOptions{})
		return nil, err
	}

	car.PhotoURL = &photoURL
	return car, nil
}

func (s *carService) Delete(ctx context.Context, id uuid.UUID) error {
	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if car == nil {
		return domain.ErrCarNotFound
	}

	return s.carRepo.Delete(ctx, id)
}

func (s *carService) getPublicURL(storagePath string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, url.PathEscape(storagePath))
}
