package repository

import (
	"context"
	"fmt"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TourDateRepository interface {
	Create(ctx context.Context, date *entity.TourDate) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TourDate, error)
	// FindByIDForUpdate takes a row-level lock inside the caller's
	// transaction; booking intake holds it across check and decrement.
	FindByIDForUpdate(ctx context.Context, q database.Querier, id uuid.UUID) (*entity.TourDate, error)
	FindUpcomingByTourID(ctx context.Context, tourID uuid.UUID, from time.Time, limit int) ([]*entity.TourDate, error)
	UpdateSeats(ctx context.Context, q database.Querier, date *entity.TourDate) error
}

type tourDateRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTourDateRepository(db database.PgxIface, log *zap.Logger) TourDateRepository {
	return &tourDateRepository{
		db:  db,
		log: log.With(zap.String("repository", "tour_date")),
	}
}

func (r *tourDateRepository) Create(ctx context.Context, date *entity.TourDate) error {
	query := `
		INSERT INTO tour_dates (id, tour_id, start_date, end_date, total_seats, available_seats, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		date.ID,
		date.TourID,
		date.StartDate,
		date.EndDate,
		date.TotalSeats,
		date.AvailableSeats,
		date.Status,
		date.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create tour date",
			zap.Error(err),
			zap.String("tour_id", date.TourID.String()),
			zap.Time("start_date", date.StartDate),
		)
		return fmt.Errorf("create tour date for tour %s: %w", date.TourID.String(), translatePgError(err))
	}

	return nil
}

func (r *tourDateRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TourDate, error) {
	query := `
		SELECT id, tour_id, start_date, end_date, total_seats, available_seats, status, created_at
		FROM tour_dates
		WHERE id = $1
	`

	date, err := r.scanDate(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find tour date by ID",
			zap.Error(err),
			zap.String("tour_date_id", id.String()),
		)
		return nil, fmt.Errorf("find tour date by ID %s: %w", id.String(), err)
	}

	return date, nil
}

func (r *tourDateRepository) FindByIDForUpdate(ctx context.Context, q database.Querier, id uuid.UUID) (*entity.TourDate, error) {
	query := `
		SELECT id, tour_id, start_date, end_date, total_seats, available_seats, status, created_at
		FROM tour_dates
		WHERE id = $1
		FOR UPDATE
	`

	date, err := r.scanDate(q.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to lock tour date",
			zap.Error(err),
			zap.String("tour_date_id", id.String()),
		)
		return nil, fmt.Errorf("lock tour date %s: %w", id.String(), err)
	}

	return date, nil
}

func (r *tourDateRepository) FindUpcomingByTourID(ctx context.Context, tourID uuid.UUID, from time.Time, limit int) ([]*entity.TourDate, error) {
	query := `
		SELECT id, tour_id, start_date, end_date, total_seats, available_seats, status, created_at
		FROM tour_dates
		WHERE tour_id = $1 AND start_date >= $2 AND status = 'available'
		ORDER BY start_date
		LIMIT $3
	`

	rows, err := r.db.Query(ctx, query, tourID, from, limit)
	if err != nil {
		r.log.Error("Failed to find upcoming tour dates",
			zap.Error(err),
			zap.String("tour_id", tourID.String()),
		)
		return nil, fmt.Errorf("find upcoming tour dates for tour %s: %w", tourID.String(), err)
	}
	defer rows.Close()

	var dates []*entity.TourDate
	for rows.Next() {
		date, err := r.scanDate(rows)
		if err != nil {
			r.log.Error("Failed to scan tour date row", zap.Error(err))
			return nil, fmt.Errorf("scan tour date row: %w", err)
		}
		dates = append(dates, date)
	}

	return dates, nil
}

// UpdateSeats persists the seat count and status of a departure. Runs
// through the caller's Querier so intake can pair it with the insert of
// the booking in one transaction.
func (r *tourDateRepository) UpdateSeats(ctx context.Context, q database.Querier, date *entity.TourDate) error {
	query := `
		UPDATE tour_dates
		SET available_seats = $2, status = $3
		WHERE id = $1
	`

	result, err := q.Exec(ctx, query, date.ID, date.AvailableSeats, date.Status)
	if err != nil {
		r.log.Error("Failed to update tour date seats",
			zap.Error(err),
			zap.String("tour_date_id", date.ID.String()),
		)
		return fmt.Errorf("update tour date %s seats: %w", date.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("tour date %s not found", date.ID.String())
	}

	return nil
}

func (r *tourDateRepository) scanDate(row pgx.Row) (*entity.TourDate, error) {
	var date entity.TourDate
	err := row.Scan(
		&date.ID,
		&date.TourID,
		&date.StartDate,
		&date.EndDate,
		&date.TotalSeats,
		&date.AvailableSeats,
		&date.Status,
		&date.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &date, nil
}
