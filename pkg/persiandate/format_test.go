package persiandate

import (
	"testing"
	"time"
)

func TestFormatWithMonthName(t *testing.T) {
	d := FromTime(time.Date(2025, 3, 21, 21, 1, 41, 0, time.UTC))

	want := "1 فروردین 1404 ساعت 21:01"
	if got := d.FormatWithMonthName(); got != want {
		t.Errorf("FormatWithMonthName() = %q, want %q", got, want)
	}
}

func TestFormatWithMonthNumber(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{
			name:  "Nowruz",
			input: time.Date(2025, 3, 21, 21, 1, 41, 0, time.UTC),
			want:  "1404/01/01 21:01",
		},
		{
			name:  "single digit month and day are zero padded",
			input: time.Date(2025, 3, 25, 9, 5, 0, 0, time.UTC),
			want:  "1404/01/05 09:05",
		},
		{
			name:  "two digit month",
			input: time.Date(2024, 10, 26, 14, 30, 0, 0, time.UTC),
			want:  "1403/08/05 14:30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromTime(tt.input).FormatWithMonthNumber(); got != tt.want {
				t.Errorf("FormatWithMonthNumber() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	d := FromTime(time.Date(2024, 10, 26, 14, 30, 7, 0, time.UTC)) // 1403/08/05

	tests := []struct {
		layout string
		want   string
	}{
		{"yyyy/MM/dd", "1403/08/05"},
		{"yyyy-MM-dd HH:mm:ss", "1403-08-05 14:30:07"},
		{"d MMM yyyy", "5 آبان 1403"},
		{"M/d", "8/5"},
		{"HH:mm", "14:30"},
	}

	for _, tt := range tests {
		t.Run(tt.layout, func(t *testing.T) {
			if got := d.Format(tt.layout); got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.layout, got, tt.want)
			}
		})
	}
}

func TestStringUsesConfiguredLayout(t *testing.T) {
	d, err := New(Options{
		Source: SourceTime,
		Time:   time.Date(2025, 3, 21, 21, 1, 41, 0, time.UTC),
		Layout: "yyyy.MM.dd",
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if got, want := d.String(), "1404.01.01"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestFormatClampsEsfandInCommonYear(t *testing.T) {
	// A synthetic 30 Esfand 1404: the converter never emits it, but the
	// display path must still clamp it to 29.
	d := Date{year: 1404, month: 12, day: 30}

	if got, want := d.Format("yyyy/MM/dd"), "1404/12/29"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}

	leap := Date{year: 1403, month: 12, day: 30}
	if got, want := leap.Format("yyyy/MM/dd"), "1403/12/30"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}
