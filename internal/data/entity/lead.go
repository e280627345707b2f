package entity

type LeadStatus string

const (
	LeadStatusNew        LeadStatus = "new"
	LeadStatusInProgress LeadStatus = "in_progress"
	LeadStatusConverted  LeadStatus = "converted"
	LeadStatusClosed     LeadStatus = "closed"
)

type LeadSource string

const (
	LeadSourceContactForm LeadSource = "contact_form"
	LeadSourceCallback    LeadSource = "callback"
	LeadSourceChatBot     LeadSource = "chat_bot"
)

// Lead is a contact request not tied to a specific tour.
type Lead struct {
	BaseSimple
	Name    string     `db:"name"`
	Phone   string     `db:"phone"`
	Email   string     `db:"email"`
	Message string     `db:"message"`
	Source  LeadSource `db:"source"`
	Status  LeadStatus `db:"status"`
}
