package entity

type FAQCategory string

const (
	FAQCategorySafety     FAQCategory = "safety"
	FAQCategoryPayment    FAQCategory = "payment"
	FAQCategoryDocs       FAQCategory = "docs"
	FAQCategoryTransport  FAQCategory = "transport"
	FAQCategoryFood       FAQCategory = "food"
	FAQCategoryConnection FAQCategory = "connection"
	FAQCategoryOther      FAQCategory = "other"
)

type FAQ struct {
	BaseSimple
	Question     string      `db:"question"`
	Answer       string      `db:"answer"`
	Category     FAQCategory `db:"category"`
	DisplayOrder int         `db:"display_order"`
	IsActive     bool        `db:"is_active"`
}
