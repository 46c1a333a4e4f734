package timesheet

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func entry(clockIn string, hours float64, breakMinutes int, category Category) TimeEntry {
	start, _ := time.Parse(time.RFC3339, clockIn)
	end := start.Add(time.Duration(hours * float64(time.Hour)))
	return TimeEntry{
		EmployeeID:   "emp-1",
		ClockIn:      start,
		ClockOut:     &end,
		BreakMinutes: breakMinutes,
		Category:     category,
	}
}

func TestAggregateZeroEntries(t *testing.T) {
	totals := Aggregate(nil, NewHolidayCalendar(nil))
	assert.True(t, totals.Regular.IsZero())
	assert.True(t, totals.Overtime().IsZero())
	assert.True(t, totals.PublicHoliday.IsZero())
}

func TestAggregateSkipsOpenEntries(t *testing.T) {
	open := TimeEntry{EmployeeID: "emp-1", ClockIn: time.Now()}
	totals := Aggregate([]TimeEntry{open}, NewHolidayCalendar(nil))
	assert.True(t, totals.Total().IsZero())
}

func TestAggregateDeductsBreaks(t *testing.T) {
	// 9h span with a 60 minute break nets 8h regular, no overtime.
	totals := Aggregate([]TimeEntry{
		entry("2024-03-04T08:00:00Z", 9, 60, CategoryRegular),
	}, NewHolidayCalendar(nil))

	assert.True(t, totals.Regular.Equal(decimal.NewFromInt(8)), "regular = %s", totals.Regular)
	assert.True(t, totals.Overtime().IsZero())
}

func TestAggregateSplitsOvertimeTiers(t *testing.T) {
	// 13h worked: 8 regular, 3 tier-1 overtime, 2 tier-2.
	totals := Aggregate([]TimeEntry{
		entry("2024-03-04T06:00:00Z", 13, 0, CategoryRegular),
	}, NewHolidayCalendar(nil))

	assert.True(t, totals.Regular.Equal(decimal.NewFromInt(8)))
	assert.True(t, totals.OvertimeTier1.Equal(decimal.NewFromInt(3)))
	assert.True(t, totals.OvertimeTier2.Equal(decimal.NewFromInt(2)))
	assert.True(t, totals.Overtime().Equal(decimal.NewFromInt(5)))
}

func TestAggregateCalendarOverridesCategory(t *testing.T) {
	holiday, _ := time.Parse("2006-01-02", "2024-02-06")
	cal := NewHolidayCalendar([]time.Time{holiday})

	// Recorded as regular, but the date is a gazetted holiday.
	totals := Aggregate([]TimeEntry{
		entry("2024-02-06T09:00:00Z", 6, 0, CategoryRegular),
	}, cal)

	assert.True(t, totals.PublicHoliday.Equal(decimal.NewFromInt(6)), "holiday = %s", totals.PublicHoliday)
	assert.True(t, totals.Regular.IsZero())
}

func TestAggregateDemotesHolidayCategoryOffCalendar(t *testing.T) {
	holiday, _ := time.Parse("2006-01-02", "2024-04-25")
	cal := NewHolidayCalendar([]time.Time{holiday})

	// Recorded as public_holiday, but the date is an ordinary Monday.
	// The calendar wins in this direction too: the hours fall back to
	// the regular/overtime split.
	totals := Aggregate([]TimeEntry{
		entry("2024-03-04T08:00:00Z", 6, 0, CategoryPublicHoliday),
		entry("2024-03-05T06:00:00Z", 10, 0, CategoryPublicHoliday),
	}, cal)

	assert.True(t, totals.PublicHoliday.IsZero(), "holiday = %s", totals.PublicHoliday)
	assert.True(t, totals.Regular.Equal(decimal.NewFromInt(14)), "regular = %s", totals.Regular)
	assert.True(t, totals.OvertimeTier1.Equal(decimal.NewFromInt(2)), "tier1 = %s", totals.OvertimeTier1)
}

func TestAggregateHolidayNotMergedWithRegular(t *testing.T) {
	holiday, _ := time.Parse("2006-01-02", "2024-04-25")
	cal := NewHolidayCalendar([]time.Time{holiday})

	entries := []TimeEntry{
		entry("2024-04-24T08:00:00Z", 8, 0, CategoryRegular),
		entry("2024-04-25T10:00:00Z", 4, 0, CategoryRegular),
	}

	totals := Aggregate(entries, cal)
	assert.True(t, totals.Regular.Equal(decimal.NewFromInt(8)), "regular = %s", totals.Regular)
	assert.True(t, totals.PublicHoliday.Equal(decimal.NewFromInt(4)), "holiday = %s", totals.PublicHoliday)
}

func TestAggregateIdempotent(t *testing.T) {
	entries := []TimeEntry{
		entry("2024-03-04T08:00:00Z", 10, 30, CategoryRegular),
		entry("2024-03-05T08:00:00Z", 8, 45, CategoryRegular),
		entry("2024-03-06T08:00:00Z", 12.5, 60, CategoryOvertime),
	}
	cal := NewHolidayCalendar(nil)

	first := Aggregate(entries, cal)
	second := Aggregate(entries, cal)

	assert.True(t, first.Regular.Equal(second.Regular))
	assert.True(t, first.OvertimeTier1.Equal(second.OvertimeTier1))
	assert.True(t, first.OvertimeTier2.Equal(second.OvertimeTier2))
	assert.True(t, first.PublicHoliday.Equal(second.PublicHoliday))
}
