package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerjaflow/payroll-engine-go/internal/config"
	"github.com/kerjaflow/payroll-engine-go/internal/domain/employee"
	"github.com/kerjaflow/payroll-engine-go/internal/domain/holiday"
	"github.com/kerjaflow/payroll-engine-go/internal/domain/payroll"
	"github.com/kerjaflow/payroll-engine-go/internal/pkg/utils"
)

var (
	monday = time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	sunday = time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC)
)

// salariedEmployee resolves to a 25000/hour rate under default config:
// 5200000 / 26 working days / 8 hours.
func salariedEmployee() employee.Employee {
	salary := decimal.NewFromInt(5200000)
	return employee.Employee{
		ID:            "emp-1",
		FullName:      "Budi Santoso",
		Department:    "Operations",
		Position:      "Contractor",
		MonthlySalary: &salary,
		Status:        employee.StatusEmployed,
	}
}

func TestDailyPay_RegularDayWithOvertime(t *testing.T) {
	calc := NewCalculator(config.Default())

	day, err := calc.DailyPay(salariedEmployee(), monday, "09:00", "19:00", nil)
	require.NoError(t, err)

	assert.Equal(t, payroll.TierRegular, day.Tier)
	assert.Equal(t, 8.0, day.RegularHours)
	assert.Equal(t, 2.0, day.OvertimeHours)
	assert.True(t, day.RegularPay.Equal(decimal.NewFromInt(200000)), "regular pay %s", day.RegularPay)
	// 2h at the flat regular overtime rate.
	assert.True(t, day.OvertimePay.Equal(decimal.NewFromInt(20000)), "overtime pay %s", day.OvertimePay)
	// 10 worked hours passes the 9-hour meal threshold.
	assert.True(t, day.MealAllowance.Equal(decimal.NewFromInt(15000)))
	assert.True(t, day.TotalPay.Equal(decimal.NewFromInt(235000)), "total %s", day.TotalPay)
}

func TestDailyPay_ExtendedOvertimeSplit(t *testing.T) {
	calc := NewCalculator(config.Default())

	day, err := calc.DailyPay(salariedEmployee(), monday, "09:00", "20:00", nil)
	require.NoError(t, err)

	assert.Equal(t, 3.0, day.OvertimeHours)
	// First 2h at the regular rate, the third hour at the extended rate.
	want := decimal.NewFromInt(2*10000 + 1*30000)
	assert.True(t, day.OvertimePay.Equal(want), "overtime pay %s, want %s", day.OvertimePay, want)
}

func TestDailyPay_SundayAndHolidayTiers(t *testing.T) {
	calc := NewCalculator(config.Default())
	holidays := holiday.NewSet([]holiday.Holiday{
		{Date: monday, Type: holiday.TypeNational, IsPaid: true},
	})

	day, err := calc.DailyPay(salariedEmployee(), sunday, "09:00", "19:00", nil)
	require.NoError(t, err)
	assert.Equal(t, payroll.TierSunday, day.Tier)
	assert.True(t, day.OvertimePay.Equal(decimal.NewFromInt(30000)), "sunday overtime %s", day.OvertimePay)

	day, err = calc.DailyPay(salariedEmployee(), monday, "09:00", "19:00", holidays)
	require.NoError(t, err)
	assert.Equal(t, payroll.TierHoliday, day.Tier)
	assert.True(t, day.OvertimePay.Equal(decimal.NewFromInt(40000)), "holiday overtime %s", day.OvertimePay)
}

func TestDailyPay_ShortDay(t *testing.T) {
	calc := NewCalculator(config.Default())

	day, err := calc.DailyPay(salariedEmployee(), monday, "09:00", "13:00", nil)
	require.NoError(t, err)

	assert.Equal(t, 4.0, day.RegularHours)
	assert.Equal(t, 0.0, day.OvertimeHours)
	assert.True(t, day.OvertimePay.IsZero())
	assert.True(t, day.MealAllowance.IsZero())
	assert.True(t, day.TotalPay.Equal(decimal.NewFromInt(100000)), "total %s", day.TotalPay)
}

func TestDailyPay_PositionDefaultSalary(t *testing.T) {
	calc := NewCalculator(config.Default())
	emp := employee.Employee{ID: "emp-2", Position: "Staff", Status: employee.StatusEmployed}

	day, err := calc.DailyPay(emp, monday, "09:00", "17:00", nil)
	require.NoError(t, err)

	// Staff default 6000000/month over 26 days and 8 hours.
	hourly := decimal.NewFromInt(6000000).
		Div(decimal.NewFromInt(26)).
		Div(decimal.NewFromInt(8))
	want := hourly.Mul(decimal.NewFromInt(8))
	assert.True(t, day.RegularPay.Equal(want), "regular pay %s, want %s", day.RegularPay, want)
}

func TestDailyPay_HourlyRateEmployee(t *testing.T) {
	calc := NewCalculator(config.Default())
	rate := decimal.NewFromInt(30000)
	emp := employee.Employee{ID: "emp-3", Position: "Contractor", HourlyRate: &rate, Status: employee.StatusTemporary}

	day, err := calc.DailyPay(emp, monday, "09:00", "17:00", nil)
	require.NoError(t, err)

	assert.True(t, day.RegularPay.Equal(decimal.NewFromInt(240000)), "regular pay %s", day.RegularPay)
}

func TestDailyPay_MissingSalaryBasis(t *testing.T) {
	calc := NewCalculator(config.Default())
	emp := employee.Employee{ID: "emp-4", Position: "Contractor", Status: employee.StatusEmployed}

	_, err := calc.DailyPay(emp, monday, "09:00", "17:00", nil)
	assert.ErrorIs(t, err, payroll.ErrMissingSalaryBasis)
}

func TestDailyPay_InvalidTime(t *testing.T) {
	calc := NewCalculator(config.Default())

	_, err := calc.DailyPay(salariedEmployee(), monday, "9am", "17:00", nil)
	assert.ErrorIs(t, err, utils.ErrInvalidClockTime)
}
