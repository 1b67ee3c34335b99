package fixtures

import "github.com/shopspring/decimal"

// DefaultPositionSalaries maps position names to a default monthly salary,
// consulted when an employee record carries no salary override.
var DefaultPositionSalaries = map[string]decimal.Decimal{
	"Director":       decimal.NewFromInt(25000000),
	"Manager":        decimal.NewFromInt(15000000),
	"Supervisor":     decimal.NewFromInt(9000000),
	"Staff":          decimal.NewFromInt(6000000),
	"Field Operator": decimal.NewFromInt(4800000),
	"Security":       decimal.NewFromInt(4200000),
}

// DefaultSalaryForPosition looks up the default monthly salary for a
// position name.
func DefaultSalaryForPosition(position string) (decimal.Decimal, bool) {
	salary, ok := DefaultPositionSalaries[position]
	return salary, ok
}
