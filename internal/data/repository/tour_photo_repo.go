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

type TourPhotoRepository interface {
	Create(ctx context.Context, photo *entity.TourPhoto) error
	FindByTourID(ctx context.Context, tourID uuid.UUID) ([]*entity.TourPhoto, error)
	FindCoverByTourID(ctx context.Context, tourID uuid.UUID) (*entity.TourPhoto, error)
}

type tourPhotoRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTourPhotoRepository(db database.PgxIface, log *zap.Logger) TourPhotoRepository {
	return &tourPhotoRepository{
		db:  db,
		log: log.With(zap.String("repository", "tour_photo")),
	}
}

func (r *tourPhotoRepository) Create(ctx context.Context, photo *entity.TourPhoto) error {
	query := `
		INSERT INTO tour_photos (id, tour_id, photo_url, display_order, is_cover, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		photo.ID,
		photo.TourID,
		photo.PhotoURL,
		photo.DisplayOrder,
		photo.IsCover,
		photo.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create tour photo",
			zap.Error(err),
			zap.String("tour_id", photo.TourID.String()),
		)
		return fmt.Errorf("create tour photo for tour %s: %w", photo.TourID.String(), translatePgError(err))
	}

	return nil
}

func (r *tourPhotoRepository) FindByTourID(ctx context.Context, tourID uuid.UUID) ([]*entity.TourPhoto, error) {
	query := `
		SELECT id, tour_id, photo_url, display_order, is_cover, created_at
		FROM tour_photos
		WHERE tour_id = $1
		ORDER BY display_order, created_at DESC
	`

	rows, err := r.db.Query(ctx, query, tourID)
	if err != nil {
		r.log.Error("Failed to find tour photos",
			zap.Error(err),
			zap.String("tour_id", tourID.String()),
		)
		return nil, fmt.Errorf("find photos for tour %s: %w", tourID.String(), err)
	}
	defer rows.Close()

	var photos []*entity.TourPhoto
	for rows.Next() {
		var photo entity.TourPhoto
		err := rows.Scan(
			&photo.ID,
			&photo.TourID,
			&photo.PhotoURL,
			&photo.DisplayOrder,
			&photo.IsCover,
			&photo.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan tour photo row", zap.Error(err))
			return nil, fmt.Errorf("scan tour photo row: %w", err)
		}
		photos = append(photos, &photo)
	}

	return photos, nil
}

func (r *tourPhotoRepository) FindCoverByTourID(ctx context.Context, tourID uuid.UUID) (*entity.TourPhoto, error) {
	query := `
		SELECT id, tour_id, photo_url, display_order, is_cover, created_at
		FROM tour_photos
		WHERE tour_id = $1 AND is_cover = true
		ORDER BY display_order
		LIMIT 1
	`

	var photo entity.TourPhoto
	err := r.db.QueryRow(ctx, query, tourID).Scan(
		&photo.ID,
		&photo.TourID,
		&photo.PhotoURL,
		&photo.DisplayOrder,
		&photo.IsCover,
		&photo.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find cover photo",
			zap.Error(err),
			zap.String("tour_id", tourID.String()),
		)
		return nil, fmt.Errorf("find cover photo for tour %s: %w", tourID.String(), err)
	}

	return &photo, nil
}
