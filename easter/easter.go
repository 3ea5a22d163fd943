// Package easter computes the three ecclesiastical Easter algorithms this
// module supports: Western Gregorian, Orthodox-expressed-in-Gregorian,
// and pure Julian. Grounded on
// src/annual/functions/easter_funcs.py, which in turn follows the
// GM Arts revised method (see http://dates.gmarts.org/eastalg.htm).
package easter

import "github.com/tom65536go/annual"

// Western computes the Easter date for Western churches according to the
// revised method in the Gregorian calendar. Valid for years 1583-4099;
// outside that range it reports absence.
func Western(year int) annual.MaybeDate {
	if year < 1583 || year > 4099 {
		return annual.None
	}
	pfm := paschalFullMoon(year)
	day := nextSundayAfterPFM(year, pfm, true)
	return annual.Some(dayOfMarchToDate(year, day))
}

// OrthodoxInGregorian computes the Easter date for Eastern churches
// according to the original Julian method, expressed as a date in the
// Gregorian calendar. Valid for years 1583-4099.
func OrthodoxInGregorian(year int) annual.MaybeDate {
	if year < 1583 || year > 4099 {
		return annual.None
	}
	pfm := julianPaschalFullMoon(year)
	day := nextSundayAfterPFM(year, pfm, false)
	day += julianToGregorianOffset(year)
	return annual.Some(dayOfMarchToDate(year, day))
}

// Julian computes the Easter date according to the original Julian
// method, without conversion to the Gregorian calendar. Valid for years
// 326 and later.
func Julian(year int) annual.MaybeDate {
	if year < 326 {
		return annual.None
	}
	pfm := julianPaschalFullMoon(year)
	day := nextSundayAfterPFM(year, pfm, false)
	return annual.Some(dayOfMarchToDate(year, day))
}

// paschalFullMoon computes the revised (Western) Paschal Full Moon date,
// as a day of March (32 March means 1 April).
func paschalFullMoon(year int) int {
	century := year / 100
	golden := year % 19

	temp := (century-15)/2 + 202 - 11*golden
	switch {
	case isAmong(century, 21, 24, 25, 27, 28, 29, 30, 31, 32, 34, 35, 38):
		temp--
	case isAmong(century, 33, 36, 37, 39, 40):
		temp -= 2
	}
	temp = ((temp % 30) + 30) % 30

	if temp == 29 || (temp == 28 && golden > 10) {
		return temp + 20
	}
	return temp + 21
}

// julianPaschalFullMoon computes the original Julian Paschal Full Moon,
// shared by the Orthodox-in-Gregorian and pure Julian algorithms.
func julianPaschalFullMoon(year int) int {
	golden := year % 19
	return ((225-11*golden)%30+30)%30 + 21
}

// nextSundayAfterPFM computes the day (as a day of March, so that
// 32 March means 1 April) of the first Sunday strictly after the Paschal
// Full Moon. isWestern selects the revised correction term used by the
// Western algorithm.
func nextSundayAfterPFM(year, pfm int, isWestern bool) int {
	termB := ((pfm-19)%7 + 7) % 7

	modulus := 7
	if isWestern {
		modulus = 4
	}
	termC := ((40-year/100)%modulus + modulus) % modulus
	if isWestern {
		if termC == 3 {
			termC++
		}
		if termC > 1 {
			termC++
		}
	}

	centuryYear := year % 100
	termD := (centuryYear + centuryYear/4) % 7

	return pfm + (((20-termB-termC-termD)%7+7)%7) + 1
}

// julianToGregorianOffset is the number of days by which the Julian
// calendar has drifted from the Gregorian calendar in the given year.
func julianToGregorianOffset(year int) int {
	const skip = 10 // days dropped from the calendar in October 1582
	century := year / 100
	if century <= 16 {
		return skip
	}
	century -= 16
	return skip + century - century/4
}

// dayOfMarchToDate converts a day offset counted from 1 March (so that
// day 32 is 1 April and day 62 is 1 May) into a concrete date.
func dayOfMarchToDate(year, day int) annual.Date {
	switch {
	case day > 61:
		d, _ := annual.NewDate(year, annual.May, day-61)
		return d
	case day > 31:
		d, _ := annual.NewDate(year, annual.April, day-31)
		return d
	default:
		d, _ := annual.NewDate(year, annual.March, day)
		return d
	}
}

func isAmong(v int, candidates ...int) bool {
	for _, c := range candidates {
		if v == c {
			return true
		}
	}
	return false
}
