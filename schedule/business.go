// Package schedule provides holiday-aware business-day arithmetic over
// an annual.NamedDateTable, generalizing the teacher's
// BusinessDayCalculator/HolidayAwareScheduler/HolidayCalendar (which
// operated against a single goholidays.Country) to any set of named
// dates produced by a registry evaluation or a rule set.
package schedule

import (
	"fmt"

	"github.com/tom65536go/annual"
)

// HolidaySet is the set of dates a BusinessDayCalculator treats as
// holidays, keyed by date for O(1) lookup, derived from an
// annual.NamedDateTable via FromTable.
type HolidaySet map[annual.Date]string

// FromTable collects the present dates out of a NamedDateTable into a
// HolidaySet.
func FromTable(table annual.NamedDateTable) HolidaySet {
	set := make(HolidaySet, len(table))
	for name, md := range table {
		if d, ok := md.Get(); ok {
			set[d] = name
		}
	}
	return set
}

// BusinessDayCalculator checks whether dates are business days,
// weekends, or holidays, mirroring the teacher's
// BusinessDayCalculator with time.Time/goholidays.Country replaced by
// annual.Date/HolidaySet.
type BusinessDayCalculator struct {
	holidays HolidaySet
	weekends []annual.WeekDay
}

// NewBusinessDayCalculator creates a calculator over holidays with the
// default Saturday/Sunday weekend.
func NewBusinessDayCalculator(holidays HolidaySet) *BusinessDayCalculator {
	return &BusinessDayCalculator{
		holidays: holidays,
		weekends: []annual.WeekDay{annual.Saturday, annual.Sunday},
	}
}

// SetWeekends overrides the weekend weekdays.
func (bdc *BusinessDayCalculator) SetWeekends(weekends []annual.WeekDay) {
	bdc.weekends = weekends
}

// IsBusinessDay reports whether date is neither a weekend day nor a
// holiday.
func (bdc *BusinessDayCalculator) IsBusinessDay(date annual.Date) bool {
	wd := date.WeekDay()
	for _, weekend := range bdc.weekends {
		if wd == weekend {
			return false
		}
	}
	_, isHoliday := bdc.holidays[date]
	return !isHoliday
}

// NextBusinessDay returns the next business day after date.
func (bdc *BusinessDayCalculator) NextBusinessDay(date annual.Date) annual.Date {
	next := date.AddDays(1)
	for !bdc.IsBusinessDay(next) {
		next = next.AddDays(1)
	}
	return next
}

// PreviousBusinessDay returns the previous business day before date.
func (bdc *BusinessDayCalculator) PreviousBusinessDay(date annual.Date) annual.Date {
	prev := date.AddDays(-1)
	for !bdc.IsBusinessDay(prev) {
		prev = prev.AddDays(-1)
	}
	return prev
}

// AddBusinessDays steps date forward or backward by the given number
// of business days.
func (bdc *BusinessDayCalculator) AddBusinessDays(date annual.Date, days int) annual.Date {
	current := date
	if days > 0 {
		for i := 0; i < days; i++ {
			current = bdc.NextBusinessDay(current)
		}
	} else {
		for i := 0; i < -days; i++ {
			current = bdc.PreviousBusinessDay(current)
		}
	}
	return current
}

// BusinessDaysBetween counts business days in [start, end).
func (bdc *BusinessDayCalculator) BusinessDaysBetween(start, end annual.Date) int {
	if start.Sub(end) > 0 {
		return -bdc.BusinessDaysBetween(end, start)
	}

	count := 0
	current := start
	for current.Sub(end) < 0 {
		if bdc.IsBusinessDay(current) {
			count++
		}
		current = current.AddDays(1)
	}
	return count
}

// IsEndOfMonth reports whether date is the last business day of its
// month.
func (bdc *BusinessDayCalculator) IsEndOfMonth(date annual.Date) bool {
	if !bdc.IsBusinessDay(date) {
		return false
	}

	lastDay := lastDayOfMonth(date.Year, date.Month)
	for !bdc.IsBusinessDay(lastDay) {
		lastDay = lastDay.AddDays(-1)
	}
	return date.Equal(lastDay)
}

func lastDayOfMonth(year int, month annual.Month) annual.Date {
	nextMonth := month + 1
	nextYear := year
	if nextMonth > annual.December {
		nextMonth = annual.January
		nextYear++
	}
	firstOfNext, err := annual.NewDate(nextYear, nextMonth, 1)
	if err != nil {
		panic(err)
	}
	return firstOfNext.AddDays(-1)
}

// HolidayAwareScheduler schedules recurring events that skip
// non-business days, generalizing the teacher's
// HolidayAwareScheduler.
type HolidayAwareScheduler struct {
	calculator *BusinessDayCalculator
}

// NewHolidayAwareScheduler creates a scheduler over calculator.
func NewHolidayAwareScheduler(calculator *BusinessDayCalculator) *HolidayAwareScheduler {
	return &HolidayAwareScheduler{calculator: calculator}
}

// ScheduleRecurring schedules count events starting at start, spaced
// frequencyDays apart, each nudged forward to the next business day.
func (has *HolidayAwareScheduler) ScheduleRecurring(start annual.Date, frequencyDays, count int) []annual.Date {
	schedule := make([]annual.Date, 0, count)
	current := start
	for i := 0; i < count; i++ {
		if !has.calculator.IsBusinessDay(current) {
			current = has.calculator.NextBusinessDay(current)
		}
		schedule = append(schedule, current)
		current = current.AddDays(frequencyDays)
	}
	return schedule
}

// ScheduleMonthlyEndOfMonth schedules the last business day of each of
// the next months months, starting from start's month.
func (has *HolidayAwareScheduler) ScheduleMonthlyEndOfMonth(start annual.Date, months int) []annual.Date {
	schedule := make([]annual.Date, 0, months)
	year, month := start.Year, start.Month
	for i := 0; i < months; i++ {
		lastDay := lastDayOfMonth(year, month)
		for !has.calculator.IsBusinessDay(lastDay) {
			lastDay = lastDay.AddDays(-1)
		}
		schedule = append(schedule, lastDay)

		month++
		if month > annual.December {
			month = annual.January
			year++
		}
	}
	return schedule
}

// CalendarEntry describes a single day in a generated month, mirroring
// the teacher's CalendarEntry.
type CalendarEntry struct {
	Date          annual.Date
	IsHoliday     bool
	IsWeekend     bool
	HolidayName   string
	IsBusinessDay bool
}

// HolidayCalendar renders month views annotated with holiday status,
// generalizing the teacher's HolidayCalendar.
type HolidayCalendar struct {
	calculator *BusinessDayCalculator
	holidays   HolidaySet
}

// NewHolidayCalendar creates a calendar over holidays.
func NewHolidayCalendar(holidays HolidaySet) *HolidayCalendar {
	return &HolidayCalendar{
		calculator: NewBusinessDayCalculator(holidays),
		holidays:   holidays,
	}
}

// GenerateMonth builds the day-by-day entries for year/month.
func (hc *HolidayCalendar) GenerateMonth(year int, month annual.Month) []CalendarEntry {
	first, err := annual.NewDate(year, month, 1)
	if err != nil {
		return nil
	}
	last := lastDayOfMonth(year, month)

	var entries []CalendarEntry
	for d := first; d.Sub(last) <= 0; d = d.AddDays(1) {
		name, isHoliday := hc.holidays[d]
		wd := d.WeekDay()
		isWeekend := wd == annual.Saturday || wd == annual.Sunday
		entries = append(entries, CalendarEntry{
			Date:          d,
			IsHoliday:     isHoliday,
			IsWeekend:     isWeekend,
			HolidayName:   name,
			IsBusinessDay: !isHoliday && !isWeekend,
		})
	}
	return entries
}

// PrintMonth prints a formatted month calendar to stdout, marking
// holidays with an asterisk as the teacher's PrintMonth did.
func (hc *HolidayCalendar) PrintMonth(year int, month annual.Month) {
	entries := hc.GenerateMonth(year, month)
	if len(entries) == 0 {
		return
	}

	fmt.Printf("\n%s %d\n", month.String(), year)
	fmt.Println("Su Mo Tu We Th Fr Sa")

	startPos := (int(entries[0].Date.WeekDay()) + 1) % 7 // ISO Monday=0 -> Sunday-first column
	for i := 0; i < startPos; i++ {
		fmt.Print("   ")
	}

	for _, entry := range entries {
		dayStr := fmt.Sprintf("%2d", entry.Date.Day)
		if entry.IsHoliday {
			fmt.Printf("*%s", dayStr[1:])
		} else {
			fmt.Print(dayStr)
		}

		if entry.Date.WeekDay() == annual.Saturday {
			fmt.Println()
		} else {
			fmt.Print(" ")
		}
	}
	fmt.Println()
	fmt.Println("* = Holiday")
}
