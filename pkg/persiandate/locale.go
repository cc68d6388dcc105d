package persiandate

// localeKey identifies a localized string by its semantic role. Keeping the
// mapping keyed by role (rather than scattering literals) makes a future
// locale swap a single-table change.
type localeKey int

const (
	keyJustNow localeKey = iota
	keyYearsAgo
	keyMonthsAgo
	keyDaysAgo
	keyHoursAgo
	keyMinutesAgo
	keySecondsAgo
	keyHourWord
)

// faStrings holds the Persian localization. It is the only locale produced.
var faStrings = map[localeKey]string{
	keyJustNow:    "لحظاتی پیش",
	keyYearsAgo:   "سال پیش",
	keyMonthsAgo:  "ماه پیش",
	keyDaysAgo:    "روز پیش",
	keyHoursAgo:   "ساعت پیش",
	keyMinutesAgo: "دقیقه پیش",
	keySecondsAgo: "ثانیه پیش",
	keyHourWord:   "ساعت",
}

// monthNames holds the Persian month names, indexed by month-1.
var monthNames = [12]string{
	"فروردین",
	"اردیبهشت",
	"خرداد",
	"تیر",
	"مرداد",
	"شهریور",
	"مهر",
	"آبان",
	"آذر",
	"دی",
	"بهمن",
	"اسفند",
}

// MonthName returns the Persian name of the given Jalali month (1-12), or an
// empty string if the month is out of range.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}
