package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TourType string

const (
	TourTypeBusGroup   TourType = "bus_group"
	TourTypeBusSmall   TourType = "bus_small"
	TourTypeIndividual TourType = "individual"
)

// ProgramDay is one entry of the day-by-day tour program, stored as JSONB.
type ProgramDay struct {
	Day         int    `json:"day"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Tour struct {
	Base
	Title            string          `db:"title"`
	Slug             string          `db:"slug"`
	DescriptionShort string          `db:"description_short"`
	DescriptionFull  string          `db:"description_full"`
	PriceBase        decimal.Decimal `db:"price_base"`
	DurationDays     int             `db:"duration_days"`
	TourType         TourType        `db:"tour_type"`
	MaxPeople        *int            `db:"max_people"`
	TourOperatorID   uuid.UUID       `db:"tour_operator_id"`
	Region           string          `db:"region"`
	Included         string          `db:"included"`
	NotIncluded      string          `db:"not_included"`
	ProgramByDays    []ProgramDay    `db:"program_by_days"`
	IsActive         bool            `db:"is_active"`
}
