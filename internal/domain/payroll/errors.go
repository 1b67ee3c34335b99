package payroll

import "errors"

// Payroll domain errors
var (
	ErrMissingSalaryBasis = errors.New("employee has no monthly salary, position default, or hourly rate")
)
