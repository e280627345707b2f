package repository

import (
	"context"
	"fmt"

	"tour-booking/internal/data/entity"
	"tour-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OperatorRepository interface {
	Create(ctx context.Context, operator *entity.TourOperator) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TourOperator, error)
	FindActive(ctx context.Context) ([]*entity.TourOperator, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type operatorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOperatorRepository(db database.PgxIface, log *zap.Logger) OperatorRepository {
	return &operatorRepository{
		db:  db,
		log: log.With(zap.String("repository", "operator")),
	}
}

func (r *operatorRepository) Create(ctx context.Context, operator *entity.TourOperator) error {
	query := `
		INSERT INTO tour_operators (id, name, description, logo_url, phone, email, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		operator.ID,
		operator.Name,
		operator.Description,
		operator.LogoURL,
		operator.Phone,
		operator.Email,
		operator.IsActive,
		operator.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create tour operator",
			zap.Error(err),
			zap.String("name", operator.Name),
		)
		return fmt.Errorf("create tour operator %s: %w", operator.Name, translatePgError(err))
	}

	return nil
}

func (r *operatorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TourOperator, error) {
	query := `
		SELECT id, name, description, logo_url, phone, email, is_active, created_at
		FROM tour_operators
		WHERE id = $1
	`

	var operator entity.TourOperator
	err := r.db.QueryRow(ctx, query, id).Scan(
		&operator.ID,
		&operator.Name,
		&operator.Description,
		&operator.LogoURL,
		&operator.Phone,
		&operator.Email,
		&operator.IsActive,
		&operator.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find tour operator by ID",
			zap.Error(err),
			zap.String("operator_id", id.String()),
		)
		return nil, fmt.Errorf("find tour operator by ID %s: %w", id.String(), err)
	}

	return &operator, nil
}

func (r *operatorRepository) FindActive(ctx context.Context) ([]*entity.TourOperator, error) {
	query := `
		SELECT id, name, description, logo_url, phone, email, is_active, created_at
		FROM tour_operators
		WHERE is_active = true
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find active tour operators", zap.Error(err))
		return nil, fmt.Errorf("find active tour operators: %w", err)
	}
	defer rows.Close()

	var operators []*entity.TourOperator
	for rows.Next() {
		var operator entity.TourOperator
		err := rows.Scan(
			&operator.ID,
			&operator.Name,
			&operator.Description,
			&operator.LogoURL,
			&operator.Phone,
			&operator.Email,
			&operator.IsActive,
			&operator.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan tour operator row", zap.Error(err))
			return nil, fmt.Errorf("scan tour operator row: %w", err)
		}
		operators = append(operators, &operator)
	}

	return operators, nil
}

// Delete removes an operator. Operators referenced by tours are protected;
// the foreign key surfaces as ErrReferenced.
func (r *operatorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM tour_operators WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete tour operator",
			zap.Error(err),
			zap.String("operator_id", id.String()),
		)
		return fmt.Errorf("delete tour operator %s: %w", id.String(), translatePgError(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("tour operator %s not found", id.String())
	}

	r.log.Info("Tour operator deleted", zap.String("operator_id", id.String()))
	return nil
}
