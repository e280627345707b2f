package repository

import (
	"context"
	"fmt"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/pkg/database"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// TourFilter narrows the catalog listing. Nil fields are not applied.
type TourFilter struct {
	MinPrice      *decimal.Decimal
	MaxPrice      *decimal.Decimal
	Duration      *int
	TourType      *entity.TourType
	Region        string
	StartDateFrom *time.Time
	StartDateTo   *time.Time
	OrderBy       string // price_base, duration_days or created_at
	Descending    bool
}

type TourRepository interface {
	Create(ctx context.Context, tour *entity.Tour) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tour, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Tour, error)
	FindActive(ctx context.Context, filter TourFilter, limit, offset int) ([]*entity.Tour, error)
	CountActive(ctx context.Context, filter TourFilter) (int64, error)
}

type tourRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTourRepository(db database.PgxIface, log *zap.Logger) TourRepository {
	return &tourRepository{
		db:  db,
		log: log.With(zap.String("repository", "tour")),
	}
}

const tourColumns = `id, title, slug, description_short, description_full, price_base,
		duration_days, tour_type, max_people, tour_operator_id, region,
		included, not_included, program_by_days, is_active, created_at, updated_at`

func (r *tourRepository) Create(ctx context.Context, tour *entity.Tour) error {
	query := `
		INSERT INTO tours (id, title, slug, description_short, description_full, price_base,
			duration_days, tour_type, max_people, tour_operator_id, region,
			included, not_included, program_by_days, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err := r.db.Exec(ctx, query,
		tour.ID,
		tour.Title,
		tour.Slug,
		tour.DescriptionShort,
		tour.DescriptionFull,
		tour.PriceBase,
		tour.DurationDays,
		tour.TourType,
		tour.MaxPeople,
		tour.TourOperatorID,
		tour.Region,
		tour.Included,
		tour.NotIncluded,
		tour.ProgramByDays,
		tour.IsActive,
		tour.CreatedAt,
		tour.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create tour",
			zap.Error(err),
			zap.String("title", tour.Title),
			zap.String("slug", tour.Slug),
		)
		return fmt.Errorf("create tour %s: %w", tour.Slug, translatePgError(err))
	}

	return nil
}

func (r *tourRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tour, error) {
	query := fmt.Sprintf(`SELECT %s FROM tours WHERE id = $1`, tourColumns)

	tour, err := r.scanTour(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find tour by ID",
			zap.Error(err),
			zap.String("tour_id", id.String()),
		)
		return nil, fmt.Errorf("find tour by ID %s: %w", id.String(), err)
	}

	return tour, nil
}

func (r *tourRepository) FindBySlug(ctx context.Context, slug string) (*entity.Tour, error) {
	query := fmt.Sprintf(`SELECT %s FROM tours WHERE slug = $1 AND is_active = true`, tourColumns)

	tour, err := r.scanTour(r.db.QueryRow(ctx, query, slug))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find tour by slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return nil, fmt.Errorf("find tour by slug %s: %w", slug, err)
	}

	return tour, nil
}

// FindActive lists the catalog with filters applied. Date-range filters
// join against departures so only tours with a matching available date
// come back.
func (r *tourRepository) FindActive(ctx context.Context, filter TourFilter, limit, offset int) ([]*entity.Tour, error) {
	builder := r.filteredQuery(sq.Select("t.id", "t.title", "t.slug", "t.description_short",
		"t.description_full", "t.price_base", "t.duration_days", "t.tour_type",
		"t.max_people", "t.tour_operator_id", "t.region", "t.included",
		"t.not_included", "t.program_by_days", "t.is_active", "t.created_at", "t.updated_at"), filter)

	orderColumn := "t.created_at"
	switch filter.OrderBy {
	case "price_base":
		orderColumn = "t.price_base"
	case "duration_days":
		orderColumn = "t.duration_days"
	}
	direction := "ASC"
	if filter.Descending || filter.OrderBy == "" {
		direction = "DESC"
	}

	query, args, err := builder.
		OrderBy(orderColumn + " " + direction).
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build tour list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list tours", zap.Error(err), zap.String("query", query))
		return nil, fmt.Errorf("list tours: %w", err)
	}
	defer rows.Close()

	var tours []*entity.Tour
	for rows.Next() {
		tour, err := r.scanTour(rows)
		if err != nil {
			r.log.Error("Failed to scan tour row", zap.Error(err))
			return nil, fmt.Errorf("scan tour row: %w", err)
		}
		tours = append(tours, tour)
	}

	return tours, nil
}

func (r *tourRepository) CountActive(ctx context.Context, filter TourFilter) (int64, error) {
	query, args, err := r.filteredQuery(sq.Select("COUNT(DISTINCT t.id)"), filter).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build tour count query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count tours", zap.Error(err))
		return 0, fmt.Errorf("count tours: %w", err)
	}

	return count, nil
}

func (r *tourRepository) filteredQuery(builder sq.SelectBuilder, filter TourFilter) sq.SelectBuilder {
	builder = builder.From("tours t").Where(sq.Eq{"t.is_active": true})

	if filter.MinPrice != nil {
		builder = builder.Where(sq.GtOrEq{"t.price_base": *filter.MinPrice})
	}
	if filter.MaxPrice != nil {
		builder = builder.Where(sq.LtOrEq{"t.price_base": *filter.MaxPrice})
	}
	if filter.Duration != nil {
		builder = builder.Where(sq.Eq{"t.duration_days": *filter.Duration})
	}
	if filter.TourType != nil {
		builder = builder.Where(sq.Eq{"t.tour_type": *filter.TourType})
	}
	if filter.Region != "" {
		builder = builder.Where(sq.ILike{"t.region": "%" + filter.Region + "%"})
	}

	if filter.StartDateFrom != nil || filter.StartDateTo != nil {
		builder = builder.
			Join("tour_dates d ON d.tour_id = t.id").
			Where(sq.Eq{"d.status": entity.TourDateStatusAvailable}).
			Distinct()
		if filter.StartDateFrom != nil {
			builder = builder.Where(sq.GtOrEq{"d.start_date": *filter.StartDateFrom})
		}
		if filter.StartDateTo != nil {
			builder = builder.Where(sq.LtOrEq{"d.start_date": *filter.StartDateTo})
		}
	}

	return builder
}

func (r *tourRepository) scanTour(row pgx.Row) (*entity.Tour, error) {
	var tour entity.Tour
	err := row.Scan(
		&tour.ID,
		&tour.Title,
		&tour.Slug,
		&tour.DescriptionShort,
		&tour.DescriptionFull,
		&tour.PriceBase,
		&tour.DurationDays,
		&tour.TourType,
		&tour.MaxPeople,
		&tour.TourOperatorID,
		&tour.Region,
		&tour.Included,
		&tour.NotIncluded,
		&tour.ProgramByDays,
		&tour.IsActive,
		&tour.CreatedAt,
		&tour.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &tour, nil
}
