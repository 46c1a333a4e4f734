package fixtures

import (
	"time"

	"github.com/kauri-hr/payroll-backend-go/internal/domain/timesheet"
)

// National public holiday dates for the operative payroll years. Regional
// anniversary days are out of scope; the calendar covers the gazetted
// national days only.
var publicHolidayDates = []string{
	// 2024
	"2024-01-01", // New Year's Day
	"2024-01-02", // Day after New Year's Day
	"2024-02-06", // Waitangi Day
	"2024-03-29", // Good Friday
	"2024-04-01", // Easter Monday
	"2024-04-25", // Anzac Day
	"2024-06-03", // King's Birthday
	"2024-06-28", // Matariki
	"2024-10-28", // Labour Day
	"2024-12-25", // Christmas Day
	"2024-12-26", // Boxing Day

	// 2025
	"2025-01-01",
	"2025-01-02",
	"2025-02-06",
	"2025-04-18", // Good Friday
	"2025-04-21", // Easter Monday
	"2025-04-25",
	"2025-06-02", // King's Birthday
	"2025-06-20", // Matariki
	"2025-10-27", // Labour Day
	"2025-12-25",
	"2025-12-26",
}

// DefaultHolidayCalendar builds the holiday calendar used by payroll runs.
func DefaultHolidayCalendar() timesheet.HolidayCalendar {
	dates := make([]time.Time, 0, len(publicHolidayDates))
	for _, s := range publicHolidayDates {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			panic("fixtures: bad holiday date " + s)
		}
		dates = append(dates, d)
	}
	return timesheet.NewHolidayCalendar(dates)
}
