package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/kerjaflow/payroll-engine-go/internal/domain/employee"
)

// TransportAllowance pays the daily transport rate for each eligible working
// day, excluding days the employee used a non-reimbursed transport mode.
// Employees without a rate, and with no deployment default, get nothing.
func (c *Calculator) TransportAllowance(emp employee.Employee, workingDays, alternateModeDays int) decimal.Decimal {
	rate := c.cfg.TransportDefaultDailyRate
	if emp.TransportDailyRate != nil {
		rate = *emp.TransportDailyRate
	}
	if !rate.IsPositive() {
		return decimal.Zero
	}

	eligibleDays := workingDays - alternateModeDays
	if eligibleDays < 0 {
		eligibleDays = 0
	}
	return rate.Mul(decimal.NewFromInt(int64(eligibleDays))).Round(2)
}
