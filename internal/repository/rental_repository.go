package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"renta-autos/internal/domain"
)

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Rental, error)
	List(ctx context.Context, status *domain.RentalStatus, params domain.PaginationParams) ([]domain.Rental, int64, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.RentalStatus) error
	CountActive(ctx context.Context) (int64, error)
	SumRevenueSince(ctx context.Context, since time.Time) (float64, error)
}

type rentalRepository struct {
	db *sqlx.DB
}

func NewRentalRepository(db *sqlx.DB) RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) Create(ctx context.Context, rental *domain.Rental) error {
	query := `
		INSERT INTO rentals (id, client_id, car_id, start_date, end_date, total_price, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		rental.ID, rental.ClientID, rental.CarID, rental.StartDate,
		rental.EndDate, rental.TotalPrice, rental.Status, rental.CreatedBy,
	).Scan(&rental.CreatedAt, &rental.UpdatedAt)
}

func (r *rentalRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Rental, error) {
	var rental domain.Rental
	query := `SELECT * FROM rentals WHERE id = $1`

	err := r.db.GetContext(ctx, &rental, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rental, nil
}

func (r *rentalRepository) List(ctx context.Context, status *domain.RentalStatus, params domain.PaginationParams) ([]domain.Rental, int64, error) {
	params.Validate()

	var total int64
	var rentals []domain.Rental

	if status != nil {
		countQuery := `SELECT COUNT(*) FROM rentals WHERE status = $1`
		if err := r.db.GetContext(ctx, &total, countQuery, *status); err != nil {
			return nil, 0, err
		}

		query := `
			SELECT * FROM rentals
			WHERE status = $1
			ORDER BY created_at DESC
			LIMIT $2 OFFSET $3`
		err := r.db.SelectContext(ctx, &rentals, query, *status, params.PageSize, params.Offset())
		return rentals, total, err
	}

	countQuery := `SELECT COUNT(*) FROM rentals`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT * FROM rentals
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
	err := r.db.SelectContext(ctx, &rentals, query, params.PageSize, params.Offset())
	return rentals, total, err
}

func (r *rentalRepository) SetStatus(ctx context.Context, id uuid.UUID, status domain.RentalStatus) error {
	query := `UPDATE rentals SET status = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, status)
	return err
}

func (r *rentalRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM rentals WHERE status = 'active'`
	err := r.db.GetContext(ctx, &count, query)
	return count, err
}

func (r *rentalRepository) SumRevenueSince(ctx context.Context, since time.Time) (float64, error) {
	var sum float64
	query := `SELECT COALESCE(SUM(total_price), 0) FROM rentals WHERE status != 'cancelled' AND created_at >= $1`
	err := r.db.GetContext(ctx, &sum, query, since)
	return sum, err
}
