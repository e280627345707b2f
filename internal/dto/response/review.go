package response

import (
	"time"

	"tour-booking/internal/data/entity"
)

type ReviewResponse struct {
	ID         string    `json:"id"`
	TourID     string    `json:"tour_id"`
	ClientName string    `json:"client_name"`
	ClientCity string    `json:"client_city,omitempty"`
	Rating     int       `json:"rating"`
	Text       string    `json:"text"`
	Photos     []string  `json:"photos"`
	VideoURL   string    `json:"video_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ModerationStatus is deliberately absent from the public shape; only the
// staff listing includes it.
type ReviewModerationResponse struct {
	ReviewResponse
	ModerationStatus string `json:"moderation_status"`
}

func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:         review.ID.String(),
		TourID:     review.TourID.String(),
		ClientName: review.ClientName,
		ClientCity: review.ClientCity,
		Rating:     review.Rating,
		Text:       review.Text,
		Photos:     review.Photos,
		VideoURL:   review.VideoURL,
		CreatedAt:  review.CreatedAt,
	}
}

func ReviewToModerationResponse(review *entity.Review) ReviewModerationResponse {
	return ReviewModerationResponse{
		ReviewResponse:   ReviewToResponse(review),
		ModerationStatus: string(review.ModerationStatus),
	}
}
