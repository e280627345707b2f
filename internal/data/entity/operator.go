package entity

// TourOperator is a partner company running the tours. Tours reference it
// with protect-on-delete: an operator with tours cannot be removed.
type TourOperator struct {
	BaseSimple
	Name        string  `db:"name"`
	Description string  `db:"description"`
	LogoURL     *string `db:"logo_url"`
	Phone       string  `db:"phone"`
	Email       string  `db:"email"`
	IsActive    bool    `db:"is_active"`
}
