package persiandate

import (
	"fmt"
	"strconv"
	"strings"
)

// Format renders the date with the given pattern. Supported tokens:
//
//	yyyy  Jalali year
//	MMM   Persian month name
//	MM    zero-padded month
//	M     month
//	dd    zero-padded day
//	d     day
//	HH    zero-padded hour
//	mm    zero-padded minute
//	ss    zero-padded second
//
// Anything else is copied through verbatim. The month-12 day clamp is
// applied here, not in the stored value.
func (d Date) Format(layout string) string {
	day := d.displayDay()

	r := strings.NewReplacer(
		"yyyy", strconv.Itoa(d.year),
		"MMM", d.MonthName(),
		"MM", fmt.Sprintf("%02d", d.month),
		"M", strconv.Itoa(d.month),
		"dd", fmt.Sprintf("%02d", day),
		"d", strconv.Itoa(day),
		"HH", fmt.Sprintf("%02d", d.hour),
		"mm", fmt.Sprintf("%02d", d.minute),
		"ss", fmt.Sprintf("%02d", d.second),
	)
	return r.Replace(layout)
}

// String renders the date with its configured layout.
func (d Date) String() string {
	layout := d.layout
	if layout == "" {
		layout = DefaultLayout
	}
	return d.Format(layout)
}

// FormatWithMonthName renders the date with the Persian month name and the
// time of day, e.g. "1 فروردین 1404 ساعت 21:01".
func (d Date) FormatWithMonthName() string {
	return fmt.Sprintf("%d %s %d %s %02d:%02d",
		d.displayDay(), d.MonthName(), d.year, faStrings[keyHourWord], d.hour, d.minute)
}

// FormatWithMonthNumber renders the date numerically with zero-padded month
// and day, e.g. "1404/01/01 21:01".
func (d Date) FormatWithMonthNumber() string {
	return fmt.Sprintf("%d/%02d/%02d %02d:%02d",
		d.year, d.month, d.displayDay(), d.hour, d.minute)
}
