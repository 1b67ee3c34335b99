package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config is the fully-resolved calculation configuration. Every engine call
// receives it by value; hot-reloading means building a new Config and passing
// it into subsequent calls, never mutating one shared by in-flight work.
type Config struct {
	// BaseMonthlySalary is the deployment-wide fallback salary basis, used
	// only when an employee has neither a salary override nor a position
	// default. Zero means no fallback.
	BaseMonthlySalary decimal.Decimal

	WorkingDaysPerMonth  int
	StandardDailyHours   float64
	LateThresholdMinutes int

	// LeaveDivisorDays prorates unpaid-leave deductions from monthly salary.
	// It is configured independently of WorkingDaysPerMonth; deployments may
	// intentionally run the two on different values.
	LeaveDivisorDays int

	OvertimeRates OvertimeRates

	// ExtendedOvertimeAfterHours is the overtime cutoff on regular weekdays
	// beyond which the extended rate applies.
	ExtendedOvertimeAfterHours float64

	MealAllowance MealAllowance

	// TransportDefaultDailyRate backs employees without their own transport
	// rate. Zero means those employees receive no transport allowance.
	TransportDefaultDailyRate decimal.Decimal
}

// OvertimeRates are flat currency-per-hour amounts per tier, not multipliers
// of the employee's hourly rate.
type OvertimeRates struct {
	Regular  decimal.Decimal
	Sunday   decimal.Decimal
	Holiday  decimal.Decimal
	Extended decimal.Decimal
}

type MealAllowance struct {
	Amount       decimal.Decimal
	MinimumHours float64
}

// Default returns the documented fallback table used when a deployment
// supplies no overrides.
func Default() Config {
	return Config{
		BaseMonthlySalary:    decimal.Zero,
		WorkingDaysPerMonth:  26,
		StandardDailyHours:   8,
		LateThresholdMinutes: 15,
		LeaveDivisorDays:     22,
		OvertimeRates: OvertimeRates{
			Regular:  decimal.NewFromInt(10000),
			Sunday:   decimal.NewFromInt(15000),
			Holiday:  decimal.NewFromInt(20000),
			Extended: decimal.NewFromInt(30000),
		},
		ExtendedOvertimeAfterHours: 2,
		MealAllowance: MealAllowance{
			Amount:       decimal.NewFromInt(15000),
			MinimumHours: 9,
		},
		TransportDefaultDailyRate: decimal.Zero,
	}
}

// Load merges PAYROLL_* environment overrides over Default. A missing .env
// file is fine; defaults stand in for any unset key.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	var err error

	if cfg.BaseMonthlySalary, err = getEnvDecimal("PAYROLL_BASE_MONTHLY_SALARY", cfg.BaseMonthlySalary); err != nil {
		return Config{}, err
	}
	if cfg.WorkingDaysPerMonth, err = getEnvInt("PAYROLL_WORKING_DAYS_PER_MONTH", cfg.WorkingDaysPerMonth); err != nil {
		return Config{}, err
	}
	if cfg.StandardDailyHours, err = getEnvFloat("PAYROLL_STANDARD_DAILY_HOURS", cfg.StandardDailyHours); err != nil {
		return Config{}, err
	}
	if cfg.LateThresholdMinutes, err = getEnvInt("PAYROLL_LATE_THRESHOLD_MINUTES", cfg.LateThresholdMinutes); err != nil {
		return Config{}, err
	}
	if cfg.LeaveDivisorDays, err = getEnvInt("PAYROLL_LEAVE_DIVISOR_DAYS", cfg.LeaveDivisorDays); err != nil {
		return Config{}, err
	}
	if cfg.OvertimeRates.Regular, err = getEnvDecimal("PAYROLL_OT_RATE_REGULAR", cfg.OvertimeRates.Regular); err != nil {
		return Config{}, err
	}
	if cfg.OvertimeRates.Sunday, err = getEnvDecimal("PAYROLL_OT_RATE_SUNDAY", cfg.OvertimeRates.Sunday); err != nil {
		return Config{}, err
	}
	if cfg.OvertimeRates.Holiday, err = getEnvDecimal("PAYROLL_OT_RATE_HOLIDAY", cfg.OvertimeRates.Holiday); err != nil {
		return Config{}, err
	}
	if cfg.OvertimeRates.Extended, err = getEnvDecimal("PAYROLL_OT_RATE_EXTENDED", cfg.OvertimeRates.Extended); err != nil {
		return Config{}, err
	}
	if cfg.ExtendedOvertimeAfterHours, err = getEnvFloat("PAYROLL_OT_EXTENDED_AFTER_HOURS", cfg.ExtendedOvertimeAfterHours); err != nil {
		return Config{}, err
	}
	if cfg.MealAllowance.Amount, err = getEnvDecimal("PAYROLL_MEAL_AMOUNT", cfg.MealAllowance.Amount); err != nil {
		return Config{}, err
	}
	if cfg.MealAllowance.MinimumHours, err = getEnvFloat("PAYROLL_MEAL_MINIMUM_HOURS", cfg.MealAllowance.MinimumHours); err != nil {
		return Config{}, err
	}
	if cfg.TransportDefaultDailyRate, err = getEnvDecimal("PAYROLL_TRANSPORT_DAILY_RATE", cfg.TransportDefaultDailyRate); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c Config) Validate() error {
	if c.WorkingDaysPerMonth <= 0 {
		return fmt.Errorf("working days per month must be positive, got %d", c.WorkingDaysPerMonth)
	}
	if c.StandardDailyHours <= 0 {
		return fmt.Errorf("standard daily hours must be positive, got %v", c.StandardDailyHours)
	}
	if c.LeaveDivisorDays <= 0 {
		return fmt.Errorf("leave divisor days must be positive, got %d", c.LeaveDivisorDays)
	}
	if c.LateThresholdMinutes < 0 {
		return fmt.Errorf("late threshold minutes must not be negative, got %d", c.LateThresholdMinutes)
	}
	if c.ExtendedOvertimeAfterHours < 0 {
		return fmt.Errorf("extended overtime cutoff must not be negative, got %v", c.ExtendedOvertimeAfterHours)
	}
	if c.MealAllowance.MinimumHours < 0 {
		return fmt.Errorf("meal allowance minimum hours must not be negative, got %v", c.MealAllowance.MinimumHours)
	}
	for name, rate := range map[string]decimal.Decimal{
		"regular":  c.OvertimeRates.Regular,
		"sunday":   c.OvertimeRates.Sunday,
		"holiday":  c.OvertimeRates.Holiday,
		"extended": c.OvertimeRates.Extended,
	} {
		if rate.IsNegative() {
			return fmt.Errorf("%s overtime rate must not be negative", name)
		}
	}
	return nil
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvDecimal(key string, fallback decimal.Decimal) (decimal.Decimal, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}
