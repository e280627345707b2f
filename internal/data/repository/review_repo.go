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

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	FindApproved(ctx context.Context, tourID *uuid.UUID, limit, offset int) ([]*entity.Review, error)
	FindPending(ctx context.Context, limit, offset int) ([]*entity.Review, error)
	CountPending(ctx context.Context) (int64, error)
	AverageApprovedRating(ctx context.Context, tourID uuid.UUID) (*float64, error)
	UpdateModeration(ctx context.Context, reviewID uuid.UUID, status entity.ModerationStatus) error
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

const reviewColumns = `id, tour_id, client_name, client_city, rating, text,
		photos, video_url, moderation_status, created_at`

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, tour_id, client_name, client_city, rating, text,
			photos, video_url, moderation_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.TourID,
		review.ClientName,
		review.ClientCity,
		review.Rating,
		review.Text,
		review.Photos,
		review.VideoURL,
		review.ModerationStatus,
		review.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("tour_id", review.TourID.String()),
		)
		return fmt.Errorf("create review for tour %s: %w", review.TourID.String(), translatePgError(err))
	}

	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	query := fmt.Sprintf(`SELECT %s FROM reviews WHERE id = $1`, reviewColumns)

	review, err := r.scanReview(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return nil, fmt.Errorf("find review by ID %s: %w", id.String(), err)
	}

	return review, nil
}

func (r *reviewRepository) FindApproved(ctx context.Context, tourID *uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM reviews
		WHERE moderation_status = 'approved' AND ($1::uuid IS NULL OR tour_id = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, reviewColumns)

	rows, err := r.db.Query(ctx, query, tourID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find approved reviews", zap.Error(err))
		return nil, fmt.Errorf("find approved reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		review, err := r.scanReview(rows)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, review)
	}

	return reviews, nil
}

func (r *reviewRepository) FindPending(ctx context.Context, limit, offset int) ([]*entity.Review, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM reviews
		WHERE moderation_status = 'pending'
		ORDER BY created_at ASC
		LIMIT $1 OFFSET $2
	`, reviewColumns)

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find pending reviews", zap.Error(err))
		return nil, fmt.Errorf("find pending reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		review, err := r.scanReview(rows)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, review)
	}

	return reviews, nil
}

func (r *reviewRepository) CountPending(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reviews WHERE moderation_status = 'pending'`).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count pending reviews", zap.Error(err))
		return 0, fmt.Errorf("count pending reviews: %w", err)
	}

	return total, nil
}

func (r *reviewRepository) AverageApprovedRating(ctx context.Context, tourID uuid.UUID) (*float64, error) {
	query := `
		SELECT ROUND(AVG(rating)::numeric, 1)
		FROM reviews
		WHERE tour_id = $1 AND moderation_status = 'approved'
	`

	var avg *float64
	err := r.db.QueryRow(ctx, query, tourID).Scan(&avg)
	if err != nil {
		r.log.Error("Failed to compute average rating",
			zap.Error(err),
			zap.String("tour_id", tourID.String()),
		)
		return nil, fmt.Errorf("average rating for tour %s: %w", tourID.String(), err)
	}

	return avg, nil
}

func (r *reviewRepository) UpdateModeration(ctx context.Context, reviewID uuid.UUID, status entity.ModerationStatus) error {
	query := `UPDATE reviews SET moderation_status = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, reviewID, status)
	if err != nil {
		r.log.Error("Failed to update review moderation status",
			zap.Error(err),
			zap.String("review_id", reviewID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update review %s moderation to %s: %w", reviewID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s not found", reviewID.String())
	}

	return nil
}

func (r *reviewRepository) scanReview(row pgx.Row) (*entity.Review, error) {
	var review entity.Review
	err := row.Scan(
		&review.ID,
		&review.TourID,
		&review.ClientName,
		&review.ClientCity,
		&review.Rating,
		&review.Text,
		&review.Photos,
		&review.VideoURL,
		&review.ModerationStatus,
		&review.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &review, nil
}
