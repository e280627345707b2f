package entity

import "github.com/google/uuid"

// TourPhoto belongs to exactly one tour and is removed with it.
// At most one photo per tour should carry IsCover; nothing enforces it,
// the catalog just takes the first cover it finds.
type TourPhoto struct {
	BaseSimple
	TourID       uuid.UUID `db:"tour_id"`
	PhotoURL     string    `db:"photo_url"`
	DisplayOrder int       `db:"display_order"`
	IsCover      bool      `db:"is_cover"`
}
