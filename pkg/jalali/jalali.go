// Package jalali converts dates between the Gregorian and Jalali (Persian
// solar) calendars using pure integer arithmetic.
//
// The conversion works by accumulating a day count anchored to the Jalali
// epoch and reducing it through 33-year super-cycles. Leap years follow the
// common 33-year cyclical approximation (9 leap years per cycle) rather than
// the astronomically exact equinox rule; the day-count constants and the
// leap pattern are two views of the same approximation and must stay
// consistent with each other.
package jalali

import "fmt"

// gregorianDayTable holds days elapsed before the start of each Gregorian
// month in a non-leap year.
var gregorianDayTable = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// leapAnchorYear is a Jalali year known to be a leap year, used as the
// reference point for the 33-year cycle.
const leapAnchorYear = 1375

// leapOffsets are the offsets of the nine leap years within a 33-year cycle,
// counted from the cycle start.
var leapOffsets = [9]int{0, 4, 8, 12, 16, 20, 24, 28, 33}

// ToJalali converts a Gregorian calendar date to a Jalali calendar date.
//
// The function is pure and performs no bounds checking: month is expected in
// [1, 12] and day must be valid for the given month and year. Callers with
// untrusted input should run ValidateGregorian first. The returned day may
// be 30 for month 12; display paths that require the 29-day common-year form
// must apply the leap check themselves.
func ToJalali(gy, gm, gd int) (jy, jm, jd int) {
	ref := gy
	if gm > 2 {
		// Anticipate the Feb 29 contribution once March has passed.
		ref = gy + 1
	}

	days := 355666 + 365*gy + (ref+3)/4 - (ref+99)/100 + (ref+399)/400 + gd + gregorianDayTable[gm-1]

	jy = -1595 + 33*(days/12053)
	days %= 12053

	jy += 4 * (days / 1461)
	days %= 1461

	if days > 365 {
		jy += (days - 1) / 365
		days = (days - 1) % 365
	}

	if days < 186 {
		jm = 1 + days/31
		jd = 1 + days%31
	} else {
		jm = 7 + (days-186)/30
		jd = 1 + (days-186)%30
	}

	return jy, jm, jd
}

// ToGregorian converts a Jalali calendar date to a Gregorian calendar date.
// Like ToJalali it assumes a valid input date and performs no bounds checks.
func ToGregorian(jy, jm, jd int) (gy, gm, gd int) {
	y := jy + 1595

	days := -355668 + 365*y + (y/33)*8 + (y%33+3)/4 + jd
	if jm < 7 {
		days += (jm - 1) * 31
	} else {
		days += (jm-7)*30 + 186
	}

	gy = 400 * (days / 146097)
	days %= 146097

	if days > 36524 {
		days--
		gy += 100 * (days / 36524)
		days %= 36524
		if days >= 365 {
			days++
		}
	}

	gy += 4 * (days / 1461)
	days %= 1461

	if days > 365 {
		gy += (days - 1) / 365
		days = (days - 1) % 365
	}

	gd = days + 1

	leap := 0
	if isGregorianLeap(gy) {
		leap = 1
	}
	monthDays := [12]int{31, 28 + leap, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

	gm = 1
	for gm <= 12 && gd > monthDays[gm-1] {
		gd -= monthDays[gm-1]
		gm++
	}

	return gy, gm, gd
}

// IsLeapYear reports whether the given Jalali year is a leap year under the
// 33-year cyclical approximation. It is total over all integers, including
// negative years.
func IsLeapYear(year int) bool {
	delta := year - leapAnchorYear
	if delta == 0 || delta%33 == 0 {
		return true
	}

	start := leapAnchorYear
	if delta > 0 {
		if delta > 33 {
			start = leapAnchorYear + 33*(delta/33)
		}
	} else {
		if delta > -33 {
			start = leapAnchorYear - 33
		} else {
			start = leapAnchorYear - 33*((-delta)/33+1)
		}
	}

	off := year - start
	for _, o := range leapOffsets {
		if off == o {
			return true
		}
		if o > off {
			break
		}
	}
	return false
}

// MonthDays returns the number of days in the given Jalali month: 31 for
// months 1-6, 30 for months 7-11, and 29 or 30 for month 12 depending on
// leap status. It returns 0 for an out-of-range month.
func MonthDays(jy, jm int) int {
	switch {
	case jm >= 1 && jm <= 6:
		return 31
	case jm >= 7 && jm <= 11:
		return 30
	case jm == 12:
		if IsLeapYear(jy) {
			return 30
		}
		return 29
	}
	return 0
}

// GregorianMonthDays returns the number of days in the given Gregorian
// month, accounting for leap-year February. It returns 0 for an
// out-of-range month.
func GregorianMonthDays(gy, gm int) int {
	if gm < 1 || gm > 12 {
		return 0
	}
	monthDays := [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	if gm == 2 && isGregorianLeap(gy) {
		return 29
	}
	return monthDays[gm-1]
}

// ValidateGregorian checks that the given Gregorian fields form a real
// calendar date. ToJalali itself performs no validation, so this is the
// defensive boundary for untrusted input.
func ValidateGregorian(gy, gm, gd int) error {
	if gm < 1 || gm > 12 {
		return fmt.Errorf("gregorian month out of range: %d", gm)
	}
	if max := GregorianMonthDays(gy, gm); gd < 1 || gd > max {
		return fmt.Errorf("gregorian day out of range for %d-%02d: %d", gy, gm, gd)
	}
	return nil
}

// ValidateJalali checks that the given Jalali fields form a real calendar
// date under the 33-year leap approximation.
func ValidateJalali(jy, jm, jd int) error {
	if jm < 1 || jm > 12 {
		return fmt.Errorf("jalali month out of range: %d", jm)
	}
	if max := MonthDays(jy, jm); jd < 1 || jd > max {
		return fmt.Errorf("jalali day out of range for %d/%02d: %d", jy, jm, jd)
	}
	return nil
}

func isGregorianLeap(gy int) bool {
	return (gy%4 == 0 && gy%100 != 0) || gy%400 == 0
}
