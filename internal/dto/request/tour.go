package request

// TourListQuery carries the catalog filters parsed from query parameters.
// String fields stay raw here; the service layer parses and rejects them
// with per-field errors.
type TourListQuery struct {
	PaginatedRequest
	MinPrice   string
	MaxPrice   string
	Duration   int
	TourType   string
	Region     string
	StartDate  string
	EndDate    string
	OrderBy    string
	Descending bool
}

type ProgramDayRequest struct {
	Day         int    `json:"day" validate:"required,min=1"`
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"max=2000"`
}

type CreateTourRequest struct {
	Title            string              `json:"title" validate:"required,max=255"`
	Slug             string              `json:"slug,omitempty" validate:"omitempty,max=255"`
	DescriptionShort string              `json:"description_short" validate:"required,max=500"`
	DescriptionFull  string              `json:"description_full" validate:"required"`
	PriceBase        string              `json:"price_base" validate:"required"`
	DurationDays     int                 `json:"duration_days" validate:"required,min=1"`
	TourType         string              `json:"tour_type" validate:"required,oneof=bus_group bus_small individual"`
	MaxPeople        *int                `json:"max_people,omitempty" validate:"omitempty,min=1"`
	TourOperatorID   string              `json:"tour_operator_id" validate:"required,uuid4"`
	Region           string              `json:"region" validate:"max=100"`
	Included         string              `json:"included"`
	NotIncluded      string              `json:"not_included"`
	ProgramByDays    []ProgramDayRequest `json:"program_by_days" validate:"dive"`
}

type CreateTourDateRequest struct {
	StartDate  string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	TotalSeats int    `json:"total_seats" validate:"required,min=1"`
}

type CreateTourPhotoRequest struct {
	PhotoURL     string `json:"photo_url" validate:"required,url"`
	DisplayOrder int    `json:"display_order" validate:"min=0"`
	IsCover      bool   `json:"is_cover"`
}

type CreateTourOperatorRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description string  `json:"description"`
	LogoURL     *string `json:"logo_url,omitempty" validate:"omitempty,url"`
	Phone       string  `json:"phone" validate:"max=50"`
	Email       string  `json:"email" validate:"omitempty,email"`
}
