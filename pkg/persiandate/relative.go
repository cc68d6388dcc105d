package persiandate

import (
	"fmt"
	"time"

	"github.com/username/persian-datetool/pkg/clock"
)

// Ago produces a Persian relative-time phrase for target as seen from now.
//
// Units are tried largest-first and the first non-zero one wins: calendar
// years, calendar months, whole days (time of day ignored), then the hour,
// minute and second fields. Equal instants, and ties at every level, yield
// "لحظاتی پیش". The phrase is always past tense; the sign of the difference
// is discarded.
func Ago(now, target time.Time) string {
	earlier, later := target, now
	if later.Before(earlier) {
		earlier, later = later, earlier
	}

	ey, em, ed := earlier.Date()
	ly, lm, ld := later.Date()

	// Calendar period between the two dates: full months elapsed, with an
	// incomplete trailing month discounted.
	months := (ly-ey)*12 + int(lm) - int(em)
	if ld < ed {
		months--
	}

	if months >= 12 {
		return agoPhrase(months/12, keyYearsAgo)
	}
	if months > 0 {
		return agoPhrase(months, keyMonthsAgo)
	}

	if days := wholeDaysBetween(earlier, later); days > 0 {
		return agoPhrase(days, keyDaysAgo)
	}

	if dh := absInt(now.Hour() - target.Hour()); dh > 0 {
		return agoPhrase(dh, keyHoursAgo)
	}
	if dm := absInt(now.Minute() - target.Minute()); dm > 0 {
		return agoPhrase(dm, keyMinutesAgo)
	}
	if ds := absInt(now.Second() - target.Second()); ds > 0 {
		return agoPhrase(ds, keySecondsAgo)
	}

	return faStrings[keyJustNow]
}

// AgoSince is Ago with "now" read from the given clock. The clock is
// consulted on every call.
func AgoSince(c clock.Clock, target time.Time) string {
	return Ago(c.Now(), target)
}

func agoPhrase(n int, key localeKey) string {
	return fmt.Sprintf("%d %s", n, faStrings[key])
}

// wholeDaysBetween counts calendar days between two instants, ignoring the
// time of day. Both dates are re-anchored to UTC midnight so DST gaps in the
// source location cannot skew the count.
func wholeDaysBetween(earlier, later time.Time) int {
	ey, em, ed := earlier.Date()
	ly, lm, ld := later.Date()

	a := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	b := time.Date(ly, lm, ld, 0, 0, 0, 0, time.UTC)

	return int(b.Sub(a) / (24 * time.Hour))
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
