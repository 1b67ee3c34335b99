package schedule

import "time"

// WorkSite is a clock-in location with a circular geofence.
type WorkSite struct {
	Name         string
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
}

// RosterEntry assigns one employee to one shift on one date.
type RosterEntry struct {
	EmployeeID string
	Date       time.Time
	ShiftStart string // "HH:MM"
	ShiftEnd   string // "HH:MM"
	SiteName   string
}

// FindRosterEntry returns the first entry matching the employee and calendar
// date. Duplicate (employee, date) entries are undefined upstream; first
// match in slice order keeps the result deterministic for a given snapshot.
func FindRosterEntry(entries []RosterEntry, employeeID string, date time.Time) *RosterEntry {
	y, m, d := date.Date()
	for i := range entries {
		if entries[i].EmployeeID != employeeID {
			continue
		}
		ey, em, ed := entries[i].Date.Date()
		if ey == y && em == m && ed == d {
			return &entries[i]
		}
	}
	return nil
}

// FindSite returns the site with the given name, or nil.
func FindSite(sites []WorkSite, name string) *WorkSite {
	for i := range sites {
		if sites[i].Name == name {
			return &sites[i]
		}
	}
	return nil
}
