package attendance

import (
	"time"

	"github.com/kerjaflow/payroll-engine-go/internal/domain/schedule"
	"github.com/kerjaflow/payroll-engine-go/internal/pkg/validator"
)

// ========================================
// CLOCK DTOs
// ========================================

// ClockInRequest carries one clock-in attempt plus the day's scheduling
// snapshot. The engine performs no I/O; the caller supplies the roster, the
// sites and any existing record for the (employee, date) pair, and persists
// the returned record itself.
type ClockInRequest struct {
	EmployeeID string
	Date       time.Time
	Time       string // "HH:MM"
	Latitude   float64
	Longitude  float64
	CheckedVia CheckMethod

	Roster   []schedule.RosterEntry
	Sites    []schedule.WorkSite
	Existing *Record
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsValidClockTime(r.Time) {
		errs = append(errs, validator.ValidationError{
			Field:   "time",
			Message: "time must be in HH:MM 24-hour format",
		})
	}

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	switch r.CheckedVia {
	case CheckedViaGPS, CheckedViaQR, CheckedViaManual:
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "checked_via",
			Message: "checked_via must be one of gps, qr, manual",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ClockOutRequest closes the open session held in Existing.
type ClockOutRequest struct {
	EmployeeID string
	Time       string // "HH:MM"

	Existing *Record
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsValidClockTime(r.Time) {
		errs = append(errs, validator.ValidationError{
			Field:   "time",
			Message: "time must be in HH:MM 24-hour format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
