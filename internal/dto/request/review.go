package request

type CreateReviewRequest struct {
	TourID     string   `json:"tour" validate:"required,uuid4"`
	ClientName string   `json:"client_name" validate:"required,max=255"`
	ClientCity string   `json:"client_city,omitempty" validate:"max=100"`
	Rating     int      `json:"rating" validate:"required,min=1,max=5"`
	Text       string   `json:"text" validate:"required"`
	Photos     []string `json:"photos,omitempty" validate:"dive,url"`
	VideoURL   string   `json:"video_url,omitempty" validate:"omitempty,url"`
	// Ignored on purpose: reviews always start pending.
	ModerationStatus string `json:"moderation_status,omitempty" validate:"-"`
}

type ModerateReviewRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}
