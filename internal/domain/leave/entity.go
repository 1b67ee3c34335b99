package leave

import (
	"time"

	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeAnnual              Type = "annual"
	TypeSick                Type = "sick"
	TypeMaternity           Type = "maternity"
	TypePaidPersonal        Type = "paid_personal"
	TypeUnpaidPersonal      Type = "unpaid_personal"
	TypeUnpaidSickExtension Type = "unpaid_sick_extension"
)

// IsPaid reports whether the leave type deducts nothing from salary.
func (t Type) IsPaid() bool {
	switch t {
	case TypeUnpaidPersonal, TypeUnpaidSickExtension:
		return false
	}
	return true
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Request is one leave request. Whole-day leave sets TotalDays; partial-day
// leave sets TotalHours instead.
type Request struct {
	ID         string
	EmployeeID string
	Type       Type
	Status     Status
	StartDate  time.Time
	EndDate    time.Time
	TotalDays  float64
	TotalHours float64

	// SalaryDeduction is filled by the deduction calculator.
	SalaryDeduction decimal.Decimal
}
