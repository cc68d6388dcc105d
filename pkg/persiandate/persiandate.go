// Package persiandate renders Gregorian instants as Persian (Jalali) dates.
//
// A Date is an immutable value: the Jalali fields are computed once at
// construction from a Gregorian source and never change afterwards. There is
// no caching and no identity; constructing twice from the same instant
// yields equal values.
//
//	d, err := persiandate.New(persiandate.Options{
//		Source: persiandate.SourceText,
//		Text:   "2025-03-21 21:01:41",
//	})
//	d.FormatWithMonthNumber() // "1404/01/01 21:01"
package persiandate

import (
	"fmt"
	"time"

	"github.com/username/persian-datetool/pkg/jalali"
)

// DefaultLayout is the output pattern used when none is given.
const DefaultLayout = "yyyy/MM/dd HH:mm:ss"

// DefaultParseLayout is the Go reference layout used to parse textual input
// when Options.ParseLayout is empty.
const DefaultParseLayout = "2006-01-02 15:04:05"

// Source selects which Options field carries the Gregorian input.
type Source int

const (
	// SourceTime takes the instant from Options.Time.
	SourceTime Source = iota
	// SourceUnix takes the instant from Options.Unix (seconds).
	SourceUnix
	// SourceText parses Options.Text with Options.ParseLayout.
	SourceText
)

// Options is the single construction record for New. Exactly one source is
// consulted, selected by Source; this replaces a family of overloaded
// constructors.
type Options struct {
	Source Source

	Time time.Time      // used with SourceTime
	Unix int64          // used with SourceUnix
	Text string         // used with SourceText
	Loc  *time.Location // timezone for SourceUnix; defaults to time.Local

	// ParseLayout is the Go reference layout for SourceText.
	// Defaults to DefaultParseLayout.
	ParseLayout string

	// Layout is the output pattern used by Format and String.
	// Defaults to DefaultLayout.
	Layout string
}

// Date is an immutable Jalali date-time. The zero value is not meaningful;
// construct one with New or FromTime.
type Date struct {
	year, month, day     int
	hour, minute, second int
	layout               string
}

// New builds a Date from the source selected in opts.
func New(opts Options) (Date, error) {
	layout := opts.Layout
	if layout == "" {
		layout = DefaultLayout
	}

	switch opts.Source {
	case SourceTime:
		return fromTime(opts.Time, layout), nil

	case SourceUnix:
		loc := opts.Loc
		if loc == nil {
			loc = time.Local
		}
		return fromTime(time.Unix(opts.Unix, 0).In(loc), layout), nil

	case SourceText:
		parseLayout := opts.ParseLayout
		if parseLayout == "" {
			parseLayout = DefaultParseLayout
		}
		t, err := time.Parse(parseLayout, opts.Text)
		if err != nil {
			return Date{}, fmt.Errorf("failed to parse date text: %w", err)
		}
		return fromTime(t, layout), nil
	}

	return Date{}, fmt.Errorf("unknown date source: %d", opts.Source)
}

// FromTime builds a Date from a Gregorian instant with the default layout.
func FromTime(t time.Time) Date {
	return fromTime(t, DefaultLayout)
}

func fromTime(t time.Time, layout string) Date {
	jy, jm, jd := jalali.ToJalali(t.Year(), int(t.Month()), t.Day())
	return Date{
		year:   jy,
		month:  jm,
		day:    jd,
		hour:   t.Hour(),
		minute: t.Minute(),
		second: t.Second(),
		layout: layout,
	}
}

// WithLayout returns a copy of the date that formats with the given pattern.
// The receiver is left unchanged.
func (d Date) WithLayout(layout string) Date {
	d.layout = layout
	return d
}

// Year returns the Jalali year. It may be negative for dates before the
// Jalali epoch.
func (d Date) Year() int { return d.year }

// Month returns the Jalali month (1-12).
func (d Date) Month() int { return d.month }

// Day returns the raw converted Jalali day (1-31). Month 12 may report 30
// even in a common year; formatting paths apply the leap clamp.
func (d Date) Day() int { return d.day }

// Hour returns the hour of day (0-23).
func (d Date) Hour() int { return d.hour }

// Minute returns the minute (0-59).
func (d Date) Minute() int { return d.minute }

// Second returns the second (0-59).
func (d Date) Second() int { return d.second }

// MonthName returns the Persian name of the month.
func (d Date) MonthName() string { return MonthName(d.month) }

// IsLeapYear reports whether the date falls in a Jalali leap year.
func (d Date) IsLeapYear() bool { return jalali.IsLeapYear(d.year) }

// Gregorian returns the Gregorian calendar date the value was built from.
func (d Date) Gregorian() (gy, gm, gd int) {
	return jalali.ToGregorian(d.year, d.month, d.day)
}

// displayDay returns the day with the month-12 common-year clamp applied.
// 30 Esfand only exists in leap years; outside them it renders as 29.
func (d Date) displayDay() int {
	return normalizeDay(d.year, d.month, d.day)
}

func normalizeDay(year, month, day int) int {
	if month == 12 && day == 30 && !jalali.IsLeapYear(year) {
		return 29
	}
	return day
}
