// Package producers collects the built-in date functions and date
// iterators shipped with this module, registered via
// registry.FunctionRegistry.AddFromModule. Grounded on
// src/annual/functions/easter_funcs.py (the three Easter algorithms,
// mandatory per spec.md §4.2) and tests/dummy_module.py (the
// never/new_year_date/first_of_month fixtures used to demonstrate the
// producer contract itself).
package producers

import (
	"github.com/tom65536go/annual"
	"github.com/tom65536go/annual/easter"
	"github.com/tom65536go/annual/registry"
)

// Easter registers the three mandatory Easter producers under the names
// fixed by spec.md §4.2: easter, easter_orthodox, easter_julian.
func Easter() []registry.Producer {
	return []registry.Producer{
		{Name: "easter", Kind: registry.KindDateFunction, Func: func(year int) annual.MaybeDate {
			return easter.Western(year)
		}},
		{Name: "easter_orthodox", Kind: registry.KindDateFunction, Func: func(year int) annual.MaybeDate {
			return easter.OrthodoxInGregorian(year)
		}},
		{Name: "easter_julian", Kind: registry.KindDateFunction, Func: func(year int) annual.MaybeDate {
			return easter.Julian(year)
		}},
	}
}
