package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"renta-autos/internal/domain"
)

type RepairRepository interface {
	Create(ctx context.Context, repair *domain.Repair) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Repair, error)
	List(ctx context.Context, status *domain.RepairStatus, params domain.PaginationParams) ([]domain.Repair, int64, error)
	Complete(ctx context.Context, id uuid.UUID) error
	CountOpen(ctx context.Context) (int64, error)
}

type repairRepository struct {
	db *sqlx.DB
}

func NewRepairRepository(db *sqlx.DB) RepairRepository {
	return &repairRepository{db: db}
}

func (r *repairRepository) Create(ctx context.Context, repair *domain.Repair) error {
	query := `
		INSERT INTO repairs (id, car_id, description, cost, status, opened_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING opened_at`

	return r.db.QueryRowxContext(ctx, query,
		repair.ID, repair.CarID, repair.Description, repair.Cost,
		repair.Status, repair.OpenedBy,
	).Scan(&repair.OpenedAt)
}

func (r *repairRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Repair, error) {
	var repair domain.Repair
	query := `SELECT * FROM repairs WHERE id = $1`

	err := r.db.GetContext(ctx, &repair, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &repair, nil
}

func (r *repairRepository) List(ctx context.Context, status *domain.RepairStatus, params domain.PaginationParams) ([]domain.Repair, int64, error) {
	params.Validate()

	var total int64
	var repairs []domain.Repair

	if status != nil {
		countQuery := `SELECT COUNT(*) FROM repairs WHERE status = $1`
		if err := r.db.GetContext(ctx, &total, countQuery, *status); err != nil {
			return nil, 0, err
		}

		query := `
			SELECT * FROM repairs
			WHERE status = $1
			ORDER BY opened_at DESC
			LIMIT $2 OFFSET $3`
		err := r.db.SelectContext(ctx, &repairs, query, *status, params.PageSize, params.Offset())
		return repairs, total, err
	}

	countQuery := `SELECT COUNT(*) FROM repairs`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT * FROM repairs
		ORDER BY opened_at DESC
		LIMIT $1 OFFSET $2`
	err := r.db.SelectContext(ctx, &repairs, query, params.PageSize, params.Offset())
	return repairs, total, err
}

func (r *repairRepository) Complete(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE repairs
		SET status = 'completed', completed_at = NOW()
		WHERE id = $1 AND status = 'open'`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *repairRepository) CountOpen(ctx context.Context) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM repairs WHERE status = 'open'`
	err := r.db.GetContext(ctx, &count, query)
	return count, err
}
