package request

type CreateLeadRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Phone   string `json:"phone" validate:"required,max=50"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Message string `json:"message,omitempty" validate:"max=2000"`
	Source  string `json:"source" validate:"required,oneof=contact_form callback chat_bot"`
}

type UpdateLeadStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new in_progress converted closed"`
}
