// Package holidays looks up official Iranian holidays by Jalali date.
//
// Data comes from a remote calendar API with a local file cache as fallback;
// Composite wires the two together. The core date packages do not depend on
// this package.
package holidays

import "sort"

// Event is a single holiday entry in the Jalali calendar.
type Event struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Day   int    `json:"day"`
	Title string `json:"title"`
}

// Provider resolves holidays for Jalali dates.
type Provider interface {
	// YearEvents returns all holidays of the given Jalali year, sorted by
	// date.
	YearEvents(year int) ([]Event, error)

	// Holiday returns the holiday title for the given Jalali date, and
	// whether the date is a holiday at all.
	Holiday(jy, jm, jd int) (string, bool, error)
}

// sortEvents orders events chronologically in place.
func sortEvents(events []Event) {
	sort.Slice(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.Month != b.Month {
			return a.Month < b.Month
		}
		return a.Day < b.Day
	})
}

// findHoliday scans a sorted or unsorted event list for an exact date match.
func findHoliday(events []Event, jy, jm, jd int) (string, bool) {
	for _, e := range events {
		if e.Year == jy && e.Month == jm && e.Day == jd {
			return e.Title, true
		}
	}
	return "", false
}
