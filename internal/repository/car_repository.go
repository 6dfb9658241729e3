package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"renta-autos/internal/domain"
)

type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Car, error)
	GetByPlate(ctx context.Context, plate string) (*domain.Car, error)
	List(ctx context.Context, params domain.PaginationParams) ([]domain.Car, int64, error)
	Update(ctx context.Context, car *domain.Car) error
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) error
	SetPhotoURL(ctx context.Context, id uuid.UUID, photoURL string) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountAll(ctx context.Context) (int64, error)
	CountAvailable(ctx context.Context) (int64, error)
}

type carRepository struct {
	db *sqlx.DB
}

func NewCarRepository(db *sqlx.DB) CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) Create(ctx context.Context, car *domain.Car) error {
	query := `
		INSERT INTO cars (id, brand, model, year, plate, category, odometer_km, available, intake_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		car.ID, car.Brand, car.Model, car.Year, car.Plate,
		car.Category, car.OdometerKm, car.Available, car.IntakeDate,
	).Scan(&car.CreatedAt, &car.UpdatedAt)
}

func (r *carRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Car, error) {
	var car domain.Car
	query := `SELECT * FROM cars WHERE id = $1 AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, &car, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &car, nil
}

func (r *carRepository) GetByPlate(ctx context.Context, plate string) (*domain.Car, error) {
	var car domain.Car
	query := `SELECT * FROM cars WHERE plate = $1 AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, &car, query, plate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &car, nil
}

func (r *carRepository) List(ctx context.Context, params domain.PaginationParams) ([]domain.Car, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM cars WHERE deleted_at IS NULL`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, err
	}

	var cars []domain.Car
	query := `
		SELECT * FROM cars
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
	err := r.db.SelectContext(ctx, &cars, query, params.PageSize, params.Offset())
	return cars, total, err
}

func (r *carRepository) Update(ctx context.Context, car *domain.Car) error {
	query := `
		UPDATE cars
		SET brand = :brand, model = :model, year = :year, category = :category,
			odometer_km = :odometer_km, updated_at = NOW()
		WHERE id = :id AND deleted_at IS NULL`

	_, err := r.db.NamedExecContext(ctx, query, car)
	return err
}

func (r *carRepository) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	query := `UPDATE cars SET available = $2, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id, available)
	return err
}

func (r *carRepository) SetPhotoURL(ctx context.Context, id uuid.UUID, photoURL string) error {
	query := `UPDATE cars SET photo_url = $2, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id, photoURL)
	return err
}

func (r *carRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE cars SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *carRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM cars WHERE deleted_at IS NULL`
	err := r.db.GetContext(ctx, &count, query)
	return count, err
}

func (r *carRepository) CountAvailable(ctx context.Context) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM cars WHERE available = true AND deleted_at IS NULL`
	err := r.db.GetContext(ctx, &count, query)
	return count, err
}
