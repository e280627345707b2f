package response

import (
	"time"

	"tour-booking/internal/data/entity"
)

type TourOperatorResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	LogoURL     *string `json:"logo_url,omitempty"`
	Phone       string  `json:"phone,omitempty"`
	Email       string  `json:"email,omitempty"`
}

type TourPhotoResponse struct {
	ID           string `json:"id"`
	PhotoURL     string `json:"photo_url"`
	DisplayOrder int    `json:"display_order"`
	IsCover      bool   `json:"is_cover"`
}

type TourDateResponse struct {
	ID             string `json:"id"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	TotalSeats     int    `json:"total_seats"`
	AvailableSeats int    `json:"available_seats"`
	Status         string `json:"status"`
	IsAvailable    bool   `json:"is_available"`
}

type TourListItemResponse struct {
	ID               string                `json:"id"`
	Title            string                `json:"title"`
	Slug             string                `json:"slug"`
	DescriptionShort string                `json:"description_short"`
	PriceBase        string                `json:"price_base"`
	DurationDays     int                   `json:"duration_days"`
	TourType         string                `json:"tour_type"`
	Region           string                `json:"region,omitempty"`
	CoverPhoto       *string               `json:"cover_photo,omitempty"`
	NearestDate      *TourDateResponse     `json:"nearest_date,omitempty"`
	TourOperator     *TourOperatorResponse `json:"tour_operator,omitempty"`
}

type TourDetailResponse struct {
	ID               string                `json:"id"`
	Title            string                `json:"title"`
	Slug             string                `json:"slug"`
	DescriptionShort string                `json:"description_short"`
	DescriptionFull  string                `json:"description_full"`
	PriceBase        string                `json:"price_base"`
	DurationDays     int                   `json:"duration_days"`
	TourType         string                `json:"tour_type"`
	MaxPeople        *int                  `json:"max_people,omitempty"`
	Region           string                `json:"region,omitempty"`
	Included         string                `json:"included"`
	NotIncluded      string                `json:"not_included"`
	ProgramByDays    []entity.ProgramDay   `json:"program_by_days"`
	TourOperator     *TourOperatorResponse `json:"tour_operator,omitempty"`
	Photos           []TourPhotoResponse   `json:"photos"`
	Dates            []TourDateResponse    `json:"dates"`
	Reviews          []ReviewResponse      `json:"reviews"`
	AverageRating    *float64              `json:"average_rating,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
}

// Helper converters

func TourOperatorToResponse(operator *entity.TourOperator) *TourOperatorResponse {
	return &TourOperatorResponse{
		ID:          operator.ID.String(),
		Name:        operator.Name,
		Description: operator.Description,
		LogoURL:     operator.LogoURL,
		Phone:       operator.Phone,
		Email:       operator.Email,
	}
}

func TourPhotoToResponse(photo *entity.TourPhoto) TourPhotoResponse {
	return TourPhotoResponse{
		ID:           photo.ID.String(),
		PhotoURL:     photo.PhotoURL,
		DisplayOrder: photo.DisplayOrder,
		IsCover:      photo.IsCover,
	}
}

func TourDateToResponse(date *entity.TourDate) TourDateResponse {
	return TourDateResponse{
		ID:             date.ID.String(),
		StartDate:      date.StartDate.Format("2006-01-02"),
		EndDate:        date.EndDate.Format("2006-01-02"),
		TotalSeats:     date.TotalSeats,
		AvailableSeats: date.AvailableSeats,
		Status:         string(date.Status),
		IsAvailable:    date.IsBookable(),
	}
}
