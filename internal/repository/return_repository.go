package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"renta-autos/internal/domain"
)

type ReturnRepository interface {
	// CreateWithRentalClosure persists the return, marks the car
	// available and the rental completed inside one transaction, so a
	// partial failure never leaves a completed rental without its
	// return row or vice versa.
	CreateWithRentalClosure(ctx context.Context, ret *domain.Return) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ReturnWithDetails, error)
	List(ctx context.Context, params domain.PaginationParams) ([]domain.ReturnWithDetails, int64, error)
}

type returnRepository struct {
	db *sqlx.DB
}

func NewReturnRepository(db *sqlx.DB) ReturnRepository {
	return &returnRepository{db: db}
}

func (r *returnRepository) CreateWithRentalClosure(ctx context.Context, ret *domain.Return) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	insertQuery := `
		INSERT INTO returns (id, rental_id, car_id, returned_at, condition, notes, received_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING recorded_at`

	if err := tx.QueryRowxContext(ctx, insertQuery,
		ret.ID, ret.RentalID, ret.CarID, ret.ReturnedAt,
		ret.Condition, ret.Notes, ret.ReceivedBy,
	).Scan(&ret.RecordedAt); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE cars SET available = true, updated_at = NOW() WHERE id = $1`,
		ret.CarID,
	); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE rentals SET status = 'completed', updated_at = NOW() WHERE id = $1`,
		ret.RentalID,
	); err != nil {
		return err
	}

	return tx.Commit()
}

const returnDetailsQuery = `
	SELECT d.*,
		c.brand AS car_brand, c.model AS car_model, c.plate AS car_plate,
		cl.full_name AS client_name,
		rt.start_date AS rental_start, rt.end_date AS rental_end, rt.status AS rental_status
	FROM returns d
	JOIN cars c ON c.id = d.car_id
	JOIN rentals rt ON rt.id = d.rental_id
	JOIN clients cl ON cl.id = rt.client_id`

func (r *returnRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ReturnWithDetails, error) {
	var ret domain.ReturnWithDetails
	query := returnDetailsQuery + ` WHERE d.id = $1`

	err := r.db.GetContext(ctx, &ret, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ret, nil
}

func (r *returnRepository) List(ctx context.Context, params domain.PaginationParams) ([]domain.ReturnWithDetails, int64, error) {
	params.Validate()

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM returns`); err != nil {
		return nil, 0, err
	}

	var returns []domain.ReturnWithDetails
	query := returnDetailsQuery + `
		ORDER BY d.recorded_at DESC
		LIMIT $1 OFFSET $2`
	err := r.db.SelectContext(ctx, &returns, query, params.PageSize, params.Offset())
	return returns, total, err
}
