package timesheet

import "time"

// HolidayCalendar is the set of gazetted public holiday dates for the
// operative years. When an entry falls on a calendar date the calendar wins
// over whatever category the time clock recorded.
type HolidayCalendar struct {
	dates map[string]bool
}

const holidayDateLayout = "2006-01-02"

// NewHolidayCalendar builds a calendar from a list of dates.
func NewHolidayCalendar(dates []time.Time) HolidayCalendar {
	m := make(map[string]bool, len(dates))
	for _, d := range dates {
		m[d.Format(holidayDateLayout)] = true
	}
	return HolidayCalendar{dates: m}
}

// IsHoliday reports whether the given date is a public holiday.
func (c HolidayCalendar) IsHoliday(t time.Time) bool {
	return c.dates[t.Format(holidayDateLayout)]
}
