package repository

import (
	"context"
	"fmt"

	"tour-booking/internal/data/entity"
	"tour-booking/pkg/database"

	"go.uber.org/zap"
)

type FAQRepository interface {
	Create(ctx context.Context, faq *entity.FAQ) error
	FindActive(ctx context.Context, category *entity.FAQCategory) ([]*entity.FAQ, error)
}

type faqRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFAQRepository(db database.PgxIface, log *zap.Logger) FAQRepository {
	return &faqRepository{
		db:  db,
		log: log.With(zap.String("repository", "faq")),
	}
}

func (r *faqRepository) Create(ctx context.Context, faq *entity.FAQ) error {
	query := `
		INSERT INTO faq (id, question, answer, category, display_order, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		faq.ID,
		faq.Question,
		faq.Answer,
		faq.Category,
		faq.DisplayOrder,
		faq.IsActive,
		faq.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create FAQ entry", zap.Error(err))
		return fmt.Errorf("create FAQ entry: %w", translatePgError(err))
	}

	return nil
}

func (r *faqRepository) FindActive(ctx context.Context, category *entity.FAQCategory) ([]*entity.FAQ, error) {
	query := `
		SELECT id, question, answer, category, display_order, is_active, created_at
		FROM faq
		WHERE is_active = true AND ($1::text IS NULL OR category = $1)
		ORDER BY category, display_order
	`

	rows, err := r.db.Query(ctx, query, category)
	if err != nil {
		r.log.Error("Failed to find active FAQ entries", zap.Error(err))
		return nil, fmt.Errorf("find active FAQ entries: %w", err)
	}
	defer rows.Close()

	var faqs []*entity.FAQ
	for rows.Next() {
		var faq entity.FAQ
		err := rows.Scan(
			&faq.ID,
			&faq.Question,
			&faq.Answer,
			&faq.Category,
			&faq.DisplayOrder,
			&faq.IsActive,
			&faq.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan FAQ row", zap.Error(err))
			return nil, fmt.Errorf("scan FAQ row: %w", err)
		}
		faqs = append(faqs, &faq)
	}

	return faqs, nil
}
