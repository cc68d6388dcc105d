package jalali

import (
	"testing"
	"time"
)

func TestToJalali(t *testing.T) {
	tests := []struct {
		name       string
		gy, gm, gd int
		jy, jm, jd int
	}{
		{"Mid autumn", 2024, 10, 26, 1403, 8, 5},
		{"Nowruz 1404", 2025, 3, 21, 1404, 1, 1},
		{"Nowruz 1403", 2024, 3, 20, 1403, 1, 1},
		{"Nowruz 1375 anchor year", 1996, 3, 20, 1375, 1, 1},
		{"Leap day 30 Esfand 1403", 2025, 3, 20, 1403, 12, 30},
		{"Common year 29 Esfand", 2016, 3, 19, 1394, 12, 29},
		{"Unix epoch", 1970, 1, 1, 1348, 10, 11},
		{"Y2K", 2000, 1, 1, 1378, 10, 11},
		{"Iranian revolution", 1979, 2, 11, 1357, 11, 22},
		{"Gregorian leap day", 2024, 2, 29, 1402, 12, 10},
		{"End of Gregorian year", 2025, 12, 31, 1404, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jy, jm, jd := ToJalali(tt.gy, tt.gm, tt.gd)

			if jy != tt.jy || jm != tt.jm || jd != tt.jd {
				t.Errorf("ToJalali(%d, %d, %d) = (%d, %d, %d), want (%d, %d, %d)",
					tt.gy, tt.gm, tt.gd, jy, jm, jd, tt.jy, tt.jm, tt.jd)
			}
		})
	}
}

func TestToGregorian(t *testing.T) {
	tests := []struct {
		name       string
		jy, jm, jd int
		gy, gm, gd int
	}{
		{"Nowruz 1404", 1404, 1, 1, 2025, 3, 21},
		{"Mid autumn", 1403, 8, 5, 2024, 10, 26},
		{"Leap day 30 Esfand 1403", 1403, 12, 30, 2025, 3, 20},
		{"Last day of common year 1404", 1404, 12, 29, 2026, 3, 20},
		{"Unix epoch", 1348, 10, 11, 1970, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gy, gm, gd := ToGregorian(tt.jy, tt.jm, tt.jd)

			if gy != tt.gy || gm != tt.gm || gd != tt.gd {
				t.Errorf("ToGregorian(%d, %d, %d) = (%d, %d, %d), want (%d, %d, %d)",
					tt.jy, tt.jm, tt.jd, gy, gm, gd, tt.gy, tt.gm, tt.gd)
			}
		})
	}
}

// Conversion must be a bijection on valid dates: converting every Gregorian
// day in a wide range to Jalali and back must return the original date, and
// the Jalali fields must stay in range the whole way.
func TestConversionRoundTrip(t *testing.T) {
	start := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2150, 1, 1, 0, 0, 0, 0, time.UTC)

	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		gy, gm, gd := d.Year(), int(d.Month()), d.Day()

		jy, jm, jd := ToJalali(gy, gm, gd)
		if jm < 1 || jm > 12 {
			t.Fatalf("ToJalali(%d, %d, %d) month out of range: %d", gy, gm, gd, jm)
		}
		if jd < 1 || jd > 31 {
			t.Fatalf("ToJalali(%d, %d, %d) day out of range: %d", gy, gm, gd, jd)
		}

		ry, rm, rd := ToGregorian(jy, jm, jd)
		if ry != gy || rm != gm || rd != gd {
			t.Fatalf("round trip of %d-%02d-%02d via %d/%02d/%02d = %d-%02d-%02d",
				gy, gm, gd, jy, jm, jd, ry, rm, rd)
		}
	}
}

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{1375, true},  // anchor year
		{1376, false}, // year after anchor
		{1379, true},  // anchor + 4
		{1403, true},  // anchor + 28
		{1404, false},
		{1408, true}, // anchor + 33, next cycle start
		{1399, true},
		{1400, false},
		{1342, true}, // one cycle before the anchor
		{1309, true}, // two cycles before the anchor
		{1387, true},
		{1390, false},
	}

	for _, tt := range tests {
		if got := IsLeapYear(tt.year); got != tt.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestIsLeapYearCyclePeriodicity(t *testing.T) {
	for year := 900; year < 2000; year++ {
		if IsLeapYear(year) != IsLeapYear(year+33) {
			t.Errorf("IsLeapYear(%d) != IsLeapYear(%d)", year, year+33)
		}
	}
}

// The leap pattern and the reverse converter encode the same approximation:
// a year is leap exactly when its Esfand 30 maps back to the day before the
// next Nowruz.
func TestIsLeapYearMatchesConverter(t *testing.T) {
	for year := 1300; year <= 1500; year++ {
		gy, gm, gd := ToGregorian(year+1, 1, 1)
		prev := time.Date(gy, time.Month(gm), gd, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
		py, pm, pd := ToJalali(prev.Year(), int(prev.Month()), prev.Day())

		wantDay := 29
		if IsLeapYear(year) {
			wantDay = 30
		}
		if py != year || pm != 12 || pd != wantDay {
			t.Errorf("day before Nowruz %d = %d/%02d/%02d, want %d/12/%02d",
				year+1, py, pm, pd, year, wantDay)
		}
	}
}

func TestMonthDays(t *testing.T) {
	tests := []struct {
		name   string
		jy, jm int
		want   int
	}{
		{"Farvardin has 31 days", 1403, 1, 31},
		{"Shahrivar has 31 days", 1403, 6, 31},
		{"Mehr has 30 days", 1403, 7, 30},
		{"Bahman has 30 days", 1403, 11, 30},
		{"Esfand in leap year", 1403, 12, 30},
		{"Esfand in common year", 1404, 12, 29},
		{"Out of range month", 1403, 13, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MonthDays(tt.jy, tt.jm); got != tt.want {
				t.Errorf("MonthDays(%d, %d) = %d, want %d", tt.jy, tt.jm, got, tt.want)
			}
		})
	}
}

func TestValidateGregorian(t *testing.T) {
	tests := []struct {
		name       string
		gy, gm, gd int
		wantErr    bool
	}{
		{"valid date", 2025, 3, 21, false},
		{"leap day in leap year", 2024, 2, 29, false},
		{"leap day in common year", 2025, 2, 29, true},
		{"month zero", 2025, 0, 10, true},
		{"month thirteen", 2025, 13, 10, true},
		{"day zero", 2025, 6, 0, true},
		{"day past month end", 2025, 4, 31, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGregorian(tt.gy, tt.gm, tt.gd)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateGregorian(%d, %d, %d) error = %v, wantErr %v",
					tt.gy, tt.gm, tt.gd, err, tt.wantErr)
			}
		})
	}
}

func TestValidateJalali(t *testing.T) {
	tests := []struct {
		name       string
		jy, jm, jd int
		wantErr    bool
	}{
		{"valid date", 1403, 8, 5, false},
		{"Esfand 30 in leap year", 1403, 12, 30, false},
		{"Esfand 30 in common year", 1404, 12, 30, true},
		{"day 31 in second half", 1403, 7, 31, true},
		{"month out of range", 1403, 0, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJalali(tt.jy, tt.jm, tt.jd)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateJalali(%d, %d, %d) error = %v, wantErr %v",
					tt.jy, tt.jm, tt.jd, err, tt.wantErr)
			}
		})
	}
}
