package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tier is the overtime-rate bucket selected by calendar context.
type Tier string

const (
	TierRegular  Tier = "regular"
	TierSunday   Tier = "sunday"
	TierHoliday  Tier = "holiday"
	TierExtended Tier = "extended"
)

// DailyPay is one worked day's pay breakdown, kept at full precision.
type DailyPay struct {
	Date          time.Time
	Tier          Tier
	RegularHours  float64
	OvertimeHours float64
	RegularPay    decimal.Decimal
	OvertimePay   decimal.Decimal
	MealAllowance decimal.Decimal
	TotalPay      decimal.Decimal
}

// Record is the monthly payroll output for one employee. Monetary fields are
// only rounded by Rounded, at the output boundary.
type Record struct {
	EmployeeID   string
	EmployeeName string
	Position     string
	Department   string
	PeriodMonth  int
	PeriodYear   int

	RegularHours  float64
	OvertimeHours float64

	BaseSalary         decimal.Decimal
	RegularPay         decimal.Decimal
	OvertimePay        decimal.Decimal
	MealAllowance      decimal.Decimal
	TransportAllowance decimal.Decimal
	LeaveDeduction     decimal.Decimal
	AdjustedBaseSalary decimal.Decimal
	TotalPay           decimal.Decimal

	DaysPresent int
	DaysLate    int
	DaysAbsent  int

	// SkippedRecords counts attendance rows excluded from the totals because
	// they failed calculation. The per-row errors travel beside the record so
	// the omission stays visible for audit review.
	SkippedRecords int
}

// Rounded returns a copy with every monetary field rounded to 2 decimals.
// Intermediate math stays at full precision so a month's aggregation does
// not compound rounding error.
func (r Record) Rounded() Record {
	r.BaseSalary = r.BaseSalary.Round(2)
	r.RegularPay = r.RegularPay.Round(2)
	r.OvertimePay = r.OvertimePay.Round(2)
	r.MealAllowance = r.MealAllowance.Round(2)
	r.TransportAllowance = r.TransportAllowance.Round(2)
	r.LeaveDeduction = r.LeaveDeduction.Round(2)
	r.AdjustedBaseSalary = r.AdjustedBaseSalary.Round(2)
	r.TotalPay = r.TotalPay.Round(2)
	return r
}
