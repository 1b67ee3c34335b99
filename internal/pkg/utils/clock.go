package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrInvalidClockTime is returned for wall-clock input that does not match
// the 24-hour "HH:MM" pattern.
var ErrInvalidClockTime = errors.New("invalid clock time, expected HH:MM")

var clockRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ParseClock splits a 24-hour "HH:MM" wall-clock string.
func ParseClock(s string) (hour, minute int, err error) {
	if !clockRegex.MatchString(s) {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}
	hour, _ = strconv.Atoi(s[:2])
	minute, _ = strconv.Atoi(s[3:])
	return hour, minute, nil
}

// ClockMinutes returns the minutes since midnight for a "HH:MM" string.
func ClockMinutes(s string) (int, error) {
	hour, minute, err := ParseClock(s)
	if err != nil {
		return 0, err
	}
	return hour*60 + minute, nil
}

// ElapsedHours returns the hours between two wall-clock times on a common
// day. An end before the start is an overnight span and gains 24 hours.
func ElapsedHours(start, end string) (float64, error) {
	startMins, err := ClockMinutes(start)
	if err != nil {
		return 0, err
	}
	endMins, err := ClockMinutes(end)
	if err != nil {
		return 0, err
	}

	diff := endMins - startMins
	if diff < 0 {
		diff += 24 * 60
	}
	return float64(diff) / 60.0, nil
}

// LateMinutes returns how many minutes the actual time is past the expected
// time. Arriving early never yields a negative value.
func LateMinutes(expected, actual string) (int, error) {
	expectedMins, err := ClockMinutes(expected)
	if err != nil {
		return 0, err
	}
	actualMins, err := ClockMinutes(actual)
	if err != nil {
		return 0, err
	}

	diff := actualMins - expectedMins
	if diff < 0 {
		return 0, nil
	}
	return diff, nil
}
