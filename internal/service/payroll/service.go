package payroll

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/kerjaflow/payroll-engine-go/internal/config"
	"github.com/kerjaflow/payroll-engine-go/internal/domain/attendance"
	"github.com/kerjaflow/payroll-engine-go/internal/domain/employee"
	"github.com/kerjaflow/payroll-engine-go/internal/domain/holiday"
	"github.com/kerjaflow/payroll-engine-go/internal/domain/leave"
	"github.com/kerjaflow/payroll-engine-go/internal/domain/payroll"
)

// Calculator holds the resolved configuration for one payroll run. It is
// stateless beyond the config value, so one instance may serve concurrent
// per-employee aggregations.
type Calculator struct {
	cfg config.Config
}

func NewCalculator(cfg config.Config) *Calculator {
	return &Calculator{cfg: cfg}
}

// MonthlyPayrollRequest is the input snapshot for one employee and period.
// The caller owns snapshot consistency; the calculator never re-fetches.
type MonthlyPayrollRequest struct {
	Employee employee.Employee
	Month    time.Month
	Year     int

	Attendance []attendance.Record
	Leaves     []leave.Request
	Holidays   []holiday.Holiday

	// AlternateTransportDays counts days the employee used a transport mode
	// the allowance does not reimburse.
	AlternateTransportDays int
}

// RecordError ties a skipped attendance row to its failure so the omission
// stays auditable.
type RecordError struct {
	RecordID string
	Date     time.Time
	Err      error
}

func (e RecordError) Error() string {
	return fmt.Sprintf("attendance %s (%s): %v", e.RecordID, e.Date.Format("2006-01-02"), e.Err)
}

func (e RecordError) Unwrap() error { return e.Err }

// MonthlyPayroll aggregates one employee's attendance, leave and holiday
// data for a calendar month into a payroll record. A failing attendance row
// never aborts the run: its contribution is dropped, counted in
// SkippedRecords and returned in the error slice.
func (c *Calculator) MonthlyPayroll(req MonthlyPayrollRequest) (payroll.Record, []RecordError, error) {
	baseSalary, err := c.baseMonthlySalary(req.Employee)
	if err != nil {
		return payroll.Record{}, nil, err
	}

	holidays := holiday.NewSet(req.Holidays)

	record := payroll.Record{
		EmployeeID:   req.Employee.ID,
		EmployeeName: req.Employee.FullName,
		Position:     req.Employee.Position,
		Department:   req.Employee.Department,
		PeriodMonth:  int(req.Month),
		PeriodYear:   req.Year,
		BaseSalary:   baseSalary,
	}

	var errs []RecordError
	skip := func(att attendance.Record, cause error) {
		record.SkippedRecords++
		errs = append(errs, RecordError{RecordID: att.ID, Date: att.Date, Err: cause})
		slog.Warn("skipping attendance record",
			"employee_id", req.Employee.ID,
			"record_id", att.ID,
			"date", att.Date.Format("2006-01-02"),
			"error", cause,
		)
	}

	for _, att := range req.Attendance {
		if att.EmployeeID != req.Employee.ID || !inPeriod(att.Date, req.Month, req.Year) {
			continue
		}

		switch att.Status {
		case attendance.StatusAbsent:
			record.DaysAbsent++
			continue
		case attendance.StatusLeave:
			continue
		}

		if !att.IsClosed() {
			skip(att, attendance.ErrIncompleteRecord)
			continue
		}

		day, err := c.DailyPay(req.Employee, att.Date, *att.TimeIn, *att.TimeOut, holidays)
		if err != nil {
			skip(att, err)
			continue
		}

		if att.Status == attendance.StatusLate {
			record.DaysLate++
		} else {
			record.DaysPresent++
		}
		record.RegularHours += day.RegularHours
		record.OvertimeHours += day.OvertimeHours
		record.RegularPay = record.RegularPay.Add(day.RegularPay)
		record.OvertimePay = record.OvertimePay.Add(day.OvertimePay)
		record.MealAllowance = record.MealAllowance.Add(day.MealAllowance)
	}

	for _, lv := range req.Leaves {
		if lv.EmployeeID != req.Employee.ID || lv.Status != leave.StatusApproved {
			continue
		}
		if !inPeriod(lv.StartDate, req.Month, req.Year) {
			continue
		}
		record.LeaveDeduction = record.LeaveDeduction.Add(c.LeaveDeduction(baseSalary, lv))
	}

	record.TransportAllowance = c.TransportAllowance(req.Employee, c.cfg.WorkingDaysPerMonth, req.AlternateTransportDays)

	record.AdjustedBaseSalary = baseSalary.Sub(record.LeaveDeduction)
	record.TotalPay = record.AdjustedBaseSalary.
		Add(record.OvertimePay).
		Add(record.MealAllowance).
		Add(record.TransportAllowance)

	return record.Rounded(), errs, nil
}

func inPeriod(date time.Time, month time.Month, year int) bool {
	return date.Month() == month && date.Year() == year
}
