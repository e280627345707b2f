package response

import (
	"time"

	"tour-booking/internal/data/entity"
)

type LeadResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Message   string    `json:"message,omitempty"`
	Source    string    `json:"source"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func LeadToResponse(lead *entity.Lead) LeadResponse {
	return LeadResponse{
		ID:        lead.ID.String(),
		Name:      lead.Name,
		Phone:     lead.Phone,
		Email:     lead.Email,
		Message:   lead.Message,
		Source:    string(lead.Source),
		Status:    string(lead.Status),
		CreatedAt: lead.CreatedAt,
	}
}
