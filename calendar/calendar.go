// Package calendar implements the calendar primitives needed by the rule
// evaluator: day arithmetic, nth/last weekday of a month, and weekday
// relative to an anchor date. Grounded on
// src/annual/datecalc.py from the reference implementation.
package calendar

import "github.com/tom65536go/annual"

// DaysRelativeTo shifts d by n days (n may be negative). Never fails.
func DaysRelativeTo(d annual.Date, n int) annual.Date {
	return d.AddDays(n)
}

// WdOfMonth computes the ordinal-th occurrence of weekDay within
// (year, month). Returns the date and true if it exists within the
// requested month, or the zero Date and false otherwise — for example a
// 5th Wednesday that doesn't occur in a given June.
func WdOfMonth(year int, month annual.Month, ordinal int, weekDay annual.WeekDay) (annual.Date, bool) {
	first, err := annual.NewDate(year, month, 1)
	if err != nil {
		return annual.Date{}, false
	}
	offset := (int(weekDay)-int(first.WeekDay())+7)%7 + (ordinal-1)*7
	result := DaysRelativeTo(first, offset)
	if result.Year == year && result.Month == month {
		return result, true
	}
	return annual.Date{}, false
}

// LastWdOfMonth computes the last occurrence of weekDay within
// (year, month). December rolls the intermediate anchor into January of
// year+1; the final result always lies in the requested (year, month).
func LastWdOfMonth(year int, month annual.Month, weekDay annual.WeekDay) annual.Date {
	targetYear := year
	if month == annual.December {
		targetYear = year + 1
	}
	targetMonth := annual.Month(int(month)%12 + 1)
	first, err := annual.NewDate(targetYear, targetMonth, 1)
	if err != nil {
		// targetMonth is always in 1..12 and day 1 is always valid;
		// this branch cannot occur, but avoid a silent zero date.
		panic(err)
	}
	return WdRelativeTo(first, weekDay, annual.Before, false)
}

// WdRelativeTo computes when weekDay occurs relative to anchor.
//
//   - If weekDay falls on anchor and includeStart, anchor itself is
//     returned.
//   - If weekDay falls on anchor and not includeStart, the result is one
//     full week away in the given direction.
//   - Otherwise, the nearest prior occurrence (direction < 0) or the
//     nearest following occurrence (direction > 0) is returned.
func WdRelativeTo(anchor annual.Date, weekDay annual.WeekDay, direction annual.Direction, includeStart bool) annual.Date {
	delta := (int(weekDay) - int(anchor.WeekDay())) % 7
	if delta < 0 {
		delta += 7
	}
	switch {
	case delta == 0 && includeStart:
		return anchor
	case delta == 0:
		if direction > 0 {
			delta = 7
		} else {
			delta = -7
		}
	case direction < 0:
		delta -= 7
	}
	return DaysRelativeTo(anchor, delta)
}
