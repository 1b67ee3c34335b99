package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kerjaflow/payroll-engine-go/internal/config"
	"github.com/kerjaflow/payroll-engine-go/internal/domain/holiday"
	"github.com/kerjaflow/payroll-engine-go/internal/domain/payroll"
)

// ResolveTier picks the overtime tier for a work date. Holidays outrank
// Sundays; everything else is a regular weekday.
func ResolveTier(date time.Time, holidays holiday.Set) payroll.Tier {
	if holidays.Contains(date) {
		return payroll.TierHoliday
	}
	if date.Weekday() == time.Sunday {
		return payroll.TierSunday
	}
	return payroll.TierRegular
}

// RateForTier returns the configured flat currency-per-hour overtime rate.
func RateForTier(cfg config.Config, tier payroll.Tier) decimal.Decimal {
	switch tier {
	case payroll.TierHoliday:
		return cfg.OvertimeRates.Holiday
	case payroll.TierSunday:
		return cfg.OvertimeRates.Sunday
	case payroll.TierExtended:
		return cfg.OvertimeRates.Extended
	default:
		return cfg.OvertimeRates.Regular
	}
}

// OvertimePay is the multiplier form, for deployments that express a tier as
// a multiple of the employee's hourly rate instead of a flat amount.
func OvertimePay(hourlyRate decimal.Decimal, hours float64, multiplier decimal.Decimal) decimal.Decimal {
	return hourlyRate.Mul(decimal.NewFromFloat(hours)).Mul(multiplier)
}
