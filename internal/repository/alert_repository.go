package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"renta-autos/internal/domain"
)

type AlertRepository interface {
	Create(ctx context.Context, alert *domain.Alert) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Alert, error)
	List(ctx context.Context, resolved *bool, params domain.PaginationParams) ([]domain.Alert, int64, error)
	Resolve(ctx context.Context, id uuid.UUID, resolvedBy uuid.UUID) error
	CountUnresolved(ctx context.Context) (int64, error)
}

type alertRepository struct {
	db *sqlx.DB
}

func NewAlertRepository(db *sqlx.DB) AlertRepository {
	return &alertRepository{db: db}
}

func (r *alertRepository) Create(ctx context.Context, alert *domain.Alert) error {
	query := `
		INSERT INTO alerts (id, car_id, category, message, severity, created_by, resolved)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		alert.ID, alert.CarID, alert.Category, alert.Message,
		alert.Severity, alert.CreatedBy, alert.Resolved,
	).Scan(&alert.CreatedAt)
}

func (r *alertRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Alert, error) {
	var alert domain.Alert
	query := `SELECT * FROM alerts WHERE id = $1`

	err := r.db.GetContext(ctx, &alert, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &alert, nil
}

func (r *alertRepository) List(ctx context.Context, resolved *bool, params domain.PaginationParams) ([]domain.Alert, int64, error) {
	params.Validate()

	var total int64
	var alerts []domain.Alert

	if resolved != nil {
		countQuery := `SELECT COUNT(*) FROM alerts WHERE resolved = $1`
		if err := r.db.GetContext(ctx, &total, countQuery, *resolved); err != nil {
			return nil, 0, err
		}

		query := `
			SELECT * FROM alerts
			WHERE resolved = $1
			ORDER BY created_at DESC
			LIMIT $2 OFFSET $3`
		err := r.db.SelectContext(ctx, &alerts, query, *resolved, params.PageSize, params.Offset())
		return alerts, total, err
	}

	countQuery := `SELECT COUNT(*) FROM alerts`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT * FROM alerts
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
	err := r.db.SelectContext(ctx, &alerts, query, params.PageSize, params.Offset())
	return alerts, total, err
}

func (r *alertRepository) Resolve(ctx context.Context, id uuid.UUID, resolvedBy uuid.UUID) error {
	query := `
		UPDATE alerts
		SET resolved = true, resolved_by = $2, resolved_at = NOW()
		WHERE id = $1 AND resolved = false`
	_, err := r.db.ExecContext(ctx, query, id, resolvedBy)
	return err
}

func (r *alertRepository) CountUnresolved(ctx context.Context) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM alerts WHERE resolved = false`
	err := r.db.GetContext(ctx, &count, query)
	return count, err
}
