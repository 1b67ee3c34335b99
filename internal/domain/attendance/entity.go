package attendance

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
	StatusLeave   Status = "leave"
)

type CheckMethod string

const (
	CheckedViaGPS    CheckMethod = "gps"
	CheckedViaQR     CheckMethod = "qr"
	CheckedViaManual CheckMethod = "manual"
)

// Record is one employee-day of attendance. TimeIn is set at clock-in,
// TimeOut and the derived hours at clock-out; after both are set the record
// only changes through an explicit correction workflow.
type Record struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     Status
	TimeIn     *string // "HH:MM"
	TimeOut    *string // "HH:MM"

	LateMinutes   int
	TotalHours    float64
	OvertimeHours float64

	SiteName   string
	CheckedVia CheckMethod
}

// IsOpen reports a session that has clocked in but not out.
func (r Record) IsOpen() bool {
	return r.TimeIn != nil && r.TimeOut == nil
}

// IsClosed reports a completed day with both clock times set.
func (r Record) IsClosed() bool {
	return r.TimeIn != nil && r.TimeOut != nil
}
