package timesheet

import (
	"time"
)

// Category classifies a time entry as recorded by the time clock.
type Category string

const (
	CategoryRegular       Category = "regular"
	CategoryOvertime      Category = "overtime"
	CategoryPublicHoliday Category = "public_holiday"
)

// TimeEntry is one clock-in/clock-out span recorded by time tracking.
// ClockOut is nil while the employee is still clocked in; such entries
// contribute nothing to a closed pay period.
type TimeEntry struct {
	ID           string
	EmployeeID   string
	CompanyID    string
	ClockIn      time.Time
	ClockOut     *time.Time
	BreakMinutes int
	Category     Category
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsOpen reports whether the entry has no clock-out yet.
func (e TimeEntry) IsOpen() bool {
	return e.ClockOut == nil
}
