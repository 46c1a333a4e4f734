package timesheet

import (
	"github.com/shopspring/decimal"
)

// Daily hour boundaries for categorising worked time.
var (
	regularHoursPerDay = decimal.NewFromInt(8)
	overtimeTier1Hours = decimal.NewFromInt(3)
	minutesPerHour     = decimal.NewFromInt(60)
)

// HourTotals is the categorised hour breakdown for one employee over one
// pay period. The two overtime tiers are kept separate because they attract
// different pay multipliers; reporting merges them via Overtime.
type HourTotals struct {
	Regular       decimal.Decimal
	OvertimeTier1 decimal.Decimal
	OvertimeTier2 decimal.Decimal
	PublicHoliday decimal.Decimal
}

// Overtime is the merged overtime total used for reporting.
func (t HourTotals) Overtime() decimal.Decimal {
	return t.OvertimeTier1.Add(t.OvertimeTier2)
}

// Total is all categorised hours.
func (t HourTotals) Total() decimal.Decimal {
	return t.Regular.Add(t.Overtime()).Add(t.PublicHoliday)
}

// Aggregate reduces a set of time entries into categorised hour totals.
//
// Open entries are skipped. Net duration is the clocked span minus break
// minutes. The holiday calendar decides what counts as a public holiday:
// an entry on a calendar holiday is credited entirely to public holiday
// hours regardless of its recorded category, and an entry recorded
// public_holiday on a date the calendar does not list is demoted to the
// regular/overtime split. Otherwise up to 8 hours count as regular time
// and the excess as overtime, with the first 3 overtime hours in tier 1
// and the remainder in tier 2. Entries spanning more than 24 hours are
// accepted as recorded.
func Aggregate(entries []TimeEntry, calendar HolidayCalendar) HourTotals {
	var totals HourTotals

	for _, e := range entries {
		if e.IsOpen() {
			continue
		}

		spanMinutes := decimal.NewFromFloat(e.ClockOut.Sub(e.ClockIn).Minutes())
		netHours := spanMinutes.Sub(decimal.NewFromInt(int64(e.BreakMinutes))).Div(minutesPerHour)
		if netHours.LessThanOrEqual(decimal.Zero) {
			continue
		}

		// The calendar wins over the recorded category in both directions.
		if calendar.IsHoliday(e.ClockIn) {
			totals.PublicHoliday = totals.PublicHoliday.Add(netHours)
			continue
		}

		if netHours.LessThanOrEqual(regularHoursPerDay) {
			totals.Regular = totals.Regular.Add(netHours)
			continue
		}

		totals.Regular = totals.Regular.Add(regularHoursPerDay)
		overtime := netHours.Sub(regularHoursPerDay)
		if overtime.LessThanOrEqual(overtimeTier1Hours) {
			totals.OvertimeTier1 = totals.OvertimeTier1.Add(overtime)
		} else {
			totals.OvertimeTier1 = totals.OvertimeTier1.Add(overtimeTier1Hours)
			totals.OvertimeTier2 = totals.OvertimeTier2.Add(overtime.Sub(overtimeTier1Hours))
		}
	}

	return totals
}
