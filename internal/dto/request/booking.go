package request

type CreateBookingRequest struct {
	TourDateID  string `json:"tour_date" validate:"required,uuid4"`
	ClientName  string `json:"client_name" validate:"required,max=255"`
	ClientPhone string `json:"client_phone" validate:"required,max=50"`
	ClientEmail string `json:"client_email" validate:"required,email"`
	PeopleCount int    `json:"people_count" validate:"required,min=1"`
	Comment     string `json:"comment,omitempty" validate:"max=2000"`
	Source      string `json:"source,omitempty" validate:"omitempty,oneof=website whatsapp telegram phone"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new confirmed cancelled completed"`
}
