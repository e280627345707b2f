package repository

import (
	"context"
	"fmt"

	"tour-booking/internal/data/entity"
	"tour-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type LeadRepository interface {
	Create(ctx context.Context, lead *entity.Lead) error
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Lead, error)
	UpdateStatus(ctx context.Context, leadID uuid.UUID, status entity.LeadStatus) error
}

type leadRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLeadRepository(db database.PgxIface, log *zap.Logger) LeadRepository {
	return &leadRepository{
		db:  db,
		log: log.With(zap.String("repository", "lead")),
	}
}

func (r *leadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, name, phone, email, message, source, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		lead.ID,
		lead.Name,
		lead.Phone,
		lead.Email,
		lead.Message,
		lead.Source,
		lead.Status,
		lead.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create lead",
			zap.Error(err),
			zap.String("phone", lead.Phone),
		)
		return fmt.Errorf("create lead: %w", translatePgError(err))
	}

	return nil
}

func (r *leadRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Lead, error) {
	query := `
		SELECT id, name, phone, email, message, source, status, created_at
		FROM leads
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list leads", zap.Error(err))
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var leads []*entity.Lead
	for rows.Next() {
		var lead entity.Lead
		err := rows.Scan(
			&lead.ID,
			&lead.Name,
			&lead.Phone,
			&lead.Email,
			&lead.Message,
			&lead.Source,
			&lead.Status,
			&lead.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan lead row", zap.Error(err))
			return nil, fmt.Errorf("scan lead row: %w", err)
		}
		leads = append(leads, &lead)
	}

	return leads, nil
}

func (r *leadRepository) UpdateStatus(ctx context.Context, leadID uuid.UUID, status entity.LeadStatus) error {
	query := `UPDATE leads SET status = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, leadID, status)
	if err != nil {
		r.log.Error("Failed to update lead status",
			zap.Error(err),
			zap.String("lead_id", leadID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update lead %s status to %s: %w", leadID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("lead %s not found", leadID.String())
	}

	return nil
}
