package producers

import (
	"github.com/tom65536go/annual"
	"github.com/tom65536go/annual/calendar"
	"github.com/tom65536go/annual/registry"
)

// NthWeekdayHoliday builds a date_function producer for a holiday
// defined as the ordinal-th occurrence of weekDay in month (or, when
// ordinal is negative, the last occurrence), generalizing the
// NthWeekdayOfMonth helper used throughout the teacher's countries/us.go
// for holidays such as "3rd Monday of January" (Martin Luther King Jr.
// Day) and "4th Thursday of November" (Thanksgiving). validFrom is the
// first year the holiday applies (0 means always).
func NthWeekdayHoliday(month annual.Month, weekDay annual.WeekDay, ordinal, validFrom int) func(year int) annual.MaybeDate {
	return func(year int) annual.MaybeDate {
		if validFrom > 0 && year < validFrom {
			return annual.None
		}
		if ordinal < 0 {
			return annual.Some(calendar.LastWdOfMonth(year, month, weekDay))
		}
		d, ok := calendar.WdOfMonth(year, month, ordinal, weekDay)
		if !ok {
			return annual.None
		}
		return annual.Some(d)
	}
}

// USFederal registers a handful of recurring United States federal
// holidays defined purely by weekday-of-month rules, demonstrating the
// producer contract with real calendar arithmetic instead of fixed
// dates. Adapted from countries/us.go's LoadHolidays.
func USFederal() []registry.Producer {
	return []registry.Producer{
		{Name: "us-mlk-day", Kind: registry.KindDateFunction,
			Func: NthWeekdayHoliday(annual.January, annual.Monday, 3, 1983)},
		{Name: "us-presidents-day", Kind: registry.KindDateFunction,
			Func: NthWeekdayHoliday(annual.February, annual.Monday, 3, 0)},
		{Name: "us-memorial-day", Kind: registry.KindDateFunction,
			Func: NthWeekdayHoliday(annual.May, annual.Monday, -1, 0)},
		{Name: "us-labor-day", Kind: registry.KindDateFunction,
			Func: NthWeekdayHoliday(annual.September, annual.Monday, 1, 0)},
		{Name: "us-thanksgiving", Kind: registry.KindDateFunction,
			Func: NthWeekdayHoliday(annual.November, annual.Thursday, 4, 0)},
	}
}
