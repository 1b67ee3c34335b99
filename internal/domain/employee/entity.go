package employee

import "github.com/shopspring/decimal"

type Employee struct {
	ID         string
	FullName   string
	Department string
	Position   string

	// MonthlySalary overrides any position-default salary when set.
	MonthlySalary *decimal.Decimal

	// HourlyRate is the basis for workers paid by the hour; consulted only
	// when no monthly basis resolves.
	HourlyRate *decimal.Decimal

	TransportDailyRate *decimal.Decimal

	Status EmploymentStatus
}

type EmploymentStatus string

const (
	StatusEmployed   EmploymentStatus = "employed"
	StatusUnemployed EmploymentStatus = "unemployed"
	StatusTemporary  EmploymentStatus = "temporary"
)
