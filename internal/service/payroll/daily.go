package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kerjaflow/payroll-engine-go/internal/domain/employee"
	"github.com/kerjaflow/payroll-engine-go/internal/domain/holiday"
	"github.com/kerjaflow/payroll-engine-go/internal/domain/payroll"
	"github.com/kerjaflow/payroll-engine-go/internal/fixtures"
	"github.com/kerjaflow/payroll-engine-go/internal/pkg/utils"
)

// DailyPay produces one worked day's pay at full precision. Monetary
// rounding happens once, at the monthly record boundary.
func (c *Calculator) DailyPay(emp employee.Employee, date time.Time, timeIn, timeOut string, holidays holiday.Set) (payroll.DailyPay, error) {
	totalHours, err := utils.ElapsedHours(timeIn, timeOut)
	if err != nil {
		return payroll.DailyPay{}, err
	}

	hourlyRate, err := c.hourlyRate(emp)
	if err != nil {
		return payroll.DailyPay{}, err
	}

	regularHours := totalHours
	if regularHours > c.cfg.StandardDailyHours {
		regularHours = c.cfg.StandardDailyHours
	}
	overtimeHours := totalHours - c.cfg.StandardDailyHours
	if overtimeHours < 0 {
		overtimeHours = 0
	}

	regularPay := hourlyRate.Mul(decimal.NewFromFloat(regularHours))

	tier := ResolveTier(date, holidays)
	overtimePay := c.overtimeAmount(tier, overtimeHours)

	mealAllowance := decimal.Zero
	if totalHours >= c.cfg.MealAllowance.MinimumHours {
		mealAllowance = c.cfg.MealAllowance.Amount
	}

	return payroll.DailyPay{
		Date:          date,
		Tier:          tier,
		RegularHours:  regularHours,
		OvertimeHours: overtimeHours,
		RegularPay:    regularPay,
		OvertimePay:   overtimePay,
		MealAllowance: mealAllowance,
		TotalPay:      regularPay.Add(overtimePay).Add(mealAllowance),
	}, nil
}

// overtimeAmount prices a day's overtime for its tier. Regular weekdays
// escalate to the extended rate once overtime passes the configured cutoff;
// Sunday and holiday overtime stays flat at its tier rate.
func (c *Calculator) overtimeAmount(tier payroll.Tier, overtimeHours float64) decimal.Decimal {
	if overtimeHours <= 0 {
		return decimal.Zero
	}
	if tier != payroll.TierRegular || overtimeHours <= c.cfg.ExtendedOvertimeAfterHours {
		return RateForTier(c.cfg, tier).Mul(decimal.NewFromFloat(overtimeHours))
	}

	base := c.cfg.OvertimeRates.Regular.Mul(decimal.NewFromFloat(c.cfg.ExtendedOvertimeAfterHours))
	extended := c.cfg.OvertimeRates.Extended.Mul(decimal.NewFromFloat(overtimeHours - c.cfg.ExtendedOvertimeAfterHours))
	return base.Add(extended)
}

// baseMonthlySalary resolves the salary basis: the employee's monthly
// override, then the position default table, then the deployment-wide
// fallback.
func (c *Calculator) baseMonthlySalary(emp employee.Employee) (decimal.Decimal, error) {
	if emp.MonthlySalary != nil && emp.MonthlySalary.IsPositive() {
		return *emp.MonthlySalary, nil
	}
	if salary, ok := fixtures.DefaultSalaryForPosition(emp.Position); ok {
		return salary, nil
	}
	if c.cfg.BaseMonthlySalary.IsPositive() {
		return c.cfg.BaseMonthlySalary, nil
	}
	return decimal.Zero, payroll.ErrMissingSalaryBasis
}

// hourlyRate derives currency-per-hour from the monthly basis, or falls back
// to the employee's explicit hourly rate when no monthly basis resolves.
func (c *Calculator) hourlyRate(emp employee.Employee) (decimal.Decimal, error) {
	monthly, err := c.baseMonthlySalary(emp)
	if err != nil {
		if emp.HourlyRate != nil && emp.HourlyRate.IsPositive() {
			return *emp.HourlyRate, nil
		}
		return decimal.Zero, err
	}

	dailyRate := monthly.Div(decimal.NewFromInt(int64(c.cfg.WorkingDaysPerMonth)))
	return dailyRate.Div(decimal.NewFromFloat(c.cfg.StandardDailyHours)), nil
}
