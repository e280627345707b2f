package entity

import (
	"github.com/google/uuid"
)

type ModerationStatus string

const (
	ModerationStatusPending  ModerationStatus = "pending"
	ModerationStatusApproved ModerationStatus = "approved"
	ModerationStatusRejected ModerationStatus = "rejected"
)

// Review is client feedback for a tour. It is always created pending;
// only staff moderation moves it to approved or rejected.
type Review struct {
	BaseSimple
	TourID           uuid.UUID        `db:"tour_id"`
	ClientName       string           `db:"client_name"`
	ClientCity       string           `db:"client_city"`
	Rating           int              `db:"rating"` // 1-5
	Text             string           `db:"text"`
	Photos           []string         `db:"photos"`
	VideoURL         string           `db:"video_url"`
	ModerationStatus ModerationStatus `db:"moderation_status"`
}
