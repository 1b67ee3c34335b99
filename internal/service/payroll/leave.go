package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/kerjaflow/payroll-engine-go/internal/domain/leave"
)

// LeaveDeduction converts an unpaid leave request into a salary deduction.
// Paid leave types deduct nothing regardless of the days or hours recorded.
// The daily rate divides by LeaveDivisorDays, which is configured separately
// from the working-days count used for daily pay.
func (c *Calculator) LeaveDeduction(baseMonthly decimal.Decimal, req leave.Request) decimal.Decimal {
	if req.Type.IsPaid() {
		return decimal.Zero
	}

	dailyRate := baseMonthly.Div(decimal.NewFromInt(int64(c.cfg.LeaveDivisorDays)))

	switch {
	case req.TotalHours > 0:
		hourlyRate := dailyRate.Div(decimal.NewFromFloat(c.cfg.StandardDailyHours))
		return hourlyRate.Mul(decimal.NewFromFloat(req.TotalHours))
	case req.TotalDays > 0:
		return dailyRate.Mul(decimal.NewFromFloat(req.TotalDays))
	}
	return decimal.Zero
}
