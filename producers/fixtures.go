package producers

import (
	"fmt"

	"github.com/tom65536go/annual"
	"github.com/tom65536go/annual/registry"
)

// Never is a date function that always returns absence, kept as a
// minimal demonstration fixture (tests/dummy_module.py: `never`).
func Never(int) annual.MaybeDate {
	return annual.None
}

// NewYearsDay is a date function producing 1 January of the given year,
// registered under the overridden name "new-years-day"
// (tests/dummy_module.py: `new_year_date`).
func NewYearsDay(year int) annual.MaybeDate {
	d, err := annual.NewDate(year, annual.January, 1)
	if err != nil {
		return annual.None
	}
	return annual.Some(d)
}

// FirstOfMonth is a date iterator yielding the first day of every
// calendar month, named "greg-01".."greg-12"
// (tests/dummy_module.py: `first_of_month`). Trivial for the Gregorian
// calendar, but the same shape generalizes to calendars whose months
// don't start on a fixed day.
func FirstOfMonth(year int) []registry.NamedDate {
	pairs := make([]registry.NamedDate, 0, 12)
	for m := annual.January; m <= annual.December; m++ {
		d, err := annual.NewDate(year, m, 1)
		if err != nil {
			continue
		}
		pairs = append(pairs, registry.NamedDate{
			Name:  fmt.Sprintf("greg-%02d", int(m)),
			Value: annual.Some(d),
		})
	}
	return pairs
}

// Fixtures registers the demonstration producers above, matching the
// reference implementation's dummy_module.py used in its registry tests.
func Fixtures() []registry.Producer {
	return []registry.Producer{
		{Name: "never", Kind: registry.KindDateFunction, Func: Never},
		{Name: "new-years-day", Kind: registry.KindDateFunction, Func: NewYearsDay},
		{Kind: registry.KindDateIterator, Iter: FirstOfMonth},
	}
}
