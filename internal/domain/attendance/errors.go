package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in errors
	ErrAlreadyCheckedIn     = errors.New("you have already checked in on this date")
	ErrNoScheduleFound      = errors.New("no schedule found for this date")
	ErrOutsideAllowedRadius = errors.New("you are outside the allowed radius")

	// Check-out errors
	ErrNotCheckedIn      = errors.New("you have not checked in yet")
	ErrAlreadyCheckedOut = errors.New("you have already checked out")

	// Aggregation errors
	ErrIncompleteRecord = errors.New("attendance record is missing clock times")
)
