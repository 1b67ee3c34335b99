package attendance

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/kerjaflow/payroll-engine-go/internal/config"
	"github.com/kerjaflow/payroll-engine-go/internal/domain/attendance"
	"github.com/kerjaflow/payroll-engine-go/internal/domain/schedule"
	"github.com/kerjaflow/payroll-engine-go/internal/pkg/utils"
)

// Service classifies raw clock events against the day's roster. It holds
// nothing but the configuration and performs no I/O; persisting the returned
// record is the caller's job, which keeps concurrent calls for different
// employees trivially safe.
type Service struct {
	cfg config.Config
}

func NewService(cfg config.Config) *Service {
	return &Service{cfg: cfg}
}

// ClockIn validates the geofence and shift assignment, classifies lateness
// and returns the new attendance record.
func (s *Service) ClockIn(req attendance.ClockInRequest) (attendance.Record, error) {
	if err := req.Validate(); err != nil {
		return attendance.Record{}, err
	}

	if req.Existing != nil {
		return attendance.Record{}, attendance.ErrAlreadyCheckedIn
	}

	entry := schedule.FindRosterEntry(req.Roster, req.EmployeeID, req.Date)
	if entry == nil {
		return attendance.Record{}, attendance.ErrNoScheduleFound
	}

	site := schedule.FindSite(req.Sites, entry.SiteName)
	if site == nil {
		// A roster entry pointing at an unknown site is not actionable.
		return attendance.Record{}, attendance.ErrNoScheduleFound
	}

	// QR and manual check-ins carry no live coordinates to verify.
	if req.CheckedVia == attendance.CheckedViaGPS {
		if !utils.IsWithinRadius(req.Latitude, req.Longitude, site.Latitude, site.Longitude, site.RadiusMeters) {
			return attendance.Record{}, attendance.ErrOutsideAllowedRadius
		}
	}

	lateMinutes, err := utils.LateMinutes(entry.ShiftStart, req.Time)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("invalid shift start %q: %w", entry.ShiftStart, err)
	}

	status := attendance.StatusPresent
	if lateMinutes > s.cfg.LateThresholdMinutes {
		status = attendance.StatusLate
	}

	timeIn := req.Time
	return attendance.Record{
		ID:          uuid.NewString(),
		EmployeeID:  req.EmployeeID,
		Date:        req.Date,
		Status:      status,
		TimeIn:      &timeIn,
		LateMinutes: lateMinutes,
		SiteName:    entry.SiteName,
		CheckedVia:  req.CheckedVia,
	}, nil
}

// ClockOut closes the open session and derives total and overtime hours.
func (s *Service) ClockOut(req attendance.ClockOutRequest) (attendance.Record, error) {
	if err := req.Validate(); err != nil {
		return attendance.Record{}, err
	}

	if req.Existing == nil || req.Existing.TimeIn == nil {
		return attendance.Record{}, attendance.ErrNotCheckedIn
	}
	if req.Existing.TimeOut != nil {
		return attendance.Record{}, attendance.ErrAlreadyCheckedOut
	}

	totalHours, err := utils.ElapsedHours(*req.Existing.TimeIn, req.Time)
	if err != nil {
		return attendance.Record{}, err
	}

	overtimeHours := totalHours - s.cfg.StandardDailyHours
	if overtimeHours < 0 {
		overtimeHours = 0
	}

	record := *req.Existing
	timeOut := req.Time
	record.TimeOut = &timeOut
	record.TotalHours = totalHours
	record.OvertimeHours = overtimeHours
	return record, nil
}
