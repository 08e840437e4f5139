package entity

import "time"

// Géneros aceptados para Customer.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Customer es un cliente del salón. El teléfono es único.
type Customer struct {
	ID          string
	Name        string
	Phone       string
	Email       string
	LineID      string
	Gender      string
	DateOfBirth *time.Time
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
