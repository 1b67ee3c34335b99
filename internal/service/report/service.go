package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/kerjaflow/payroll-engine-go/internal/domain/payroll"
)

// payrollHeader is the downstream reporting contract; column order is fixed.
var payrollHeader = []string{
	"employee_id",
	"name",
	"position",
	"department",
	"regular_hours",
	"overtime_hours",
	"regular_pay",
	"overtime_pay",
	"meal_allowance",
	"total_pay",
	"transport_allowance",
	"leave_deduction",
	"days_present",
	"days_late",
	"days_absent",
}

// WritePayrollCSV writes one row per payroll record with a header row.
// Monetary columns are formatted to exactly two decimal places.
func WritePayrollCSV(w io.Writer, records []payroll.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(payrollHeader); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.EmployeeID,
			r.EmployeeName,
			r.Position,
			r.Department,
			strconv.FormatFloat(r.RegularHours, 'f', 2, 64),
			strconv.FormatFloat(r.OvertimeHours, 'f', 2, 64),
			r.RegularPay.StringFixed(2),
			r.OvertimePay.StringFixed(2),
			r.MealAllowance.StringFixed(2),
			r.TotalPay.StringFixed(2),
			r.TransportAllowance.StringFixed(2),
			r.LeaveDeduction.StringFixed(2),
			strconv.Itoa(r.DaysPresent),
			strconv.Itoa(r.DaysLate),
			strconv.Itoa(r.DaysAbsent),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write report row for employee %s: %w", r.EmployeeID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
