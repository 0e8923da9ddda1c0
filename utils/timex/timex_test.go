// File: timex_test.go
// Title: Time Utilities Tests
// Description: Tests for parsing, timezone validation, date ranges and
//              12-hour clock formatting.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-12 v0.1.0: Initial test implementation

package timex

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	huerror "github.com/msto63/helperutil/core/error"
	huerrors "github.com/msto63/helperutil/core/errors"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Time
	}{
		{"2024-03-15T10:30:00Z", time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)},
		{"2024-03-15 10:30:00", time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)},
		{"2024-03-15 10:30", time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)},
		{"2024-03-15", date(2024, 3, 15)},
		{"  2024-03-15  ", date(2024, 3, 15)},
		{"03/15/2024", date(2024, 3, 15)},
		{"March 15, 2024", date(2024, 3, 15)},
		{"20240315", date(2024, 3, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if !got.Equal(tt.expected) {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{"", "   ", "yesterday", "2024-13-45"} {
		_, err := Parse(input)
		if err == nil {
			t.Errorf("Parse(%q) should fail", input)
			continue
		}
		if !huerror.HasCode(err, huerror.CodeParseError) {
			t.Errorf("Parse(%q) code = %v", input, huerror.GetCode(err))
		}
		if huerrors.ExtractModule(err) != huerrors.ModuleTimex {
			t.Errorf("Parse(%q) module = %q", input, huerrors.ExtractModule(err))
		}
	}
}

func TestParseDate(t *testing.T) {
	tests := map[string]time.Time{
		"2024-01-31": date(2024, 1, 31),
		"2024-1-5":   date(2024, 1, 5),
		"01/31/2024": date(2024, 1, 31),
		"1/5/2024":   date(2024, 1, 5),
		"31.1.2024":  date(2024, 1, 31),
	}

	for input, want := range tests {
		got, err := ParseDate(input)
		if err != nil {
			t.Errorf("ParseDate(%q) error = %v", input, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("ParseDate(%q) = %v, want %v", input, got, want)
		}
	}

	if _, err := ParseDate("2024-01-31 10:00:00"); err == nil {
		t.Error("ParseDate should reject a time component")
	}
}

func TestIsTimezone(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"UTC", true},
		{"Europe/Berlin", true},
		{"America/New_York", true},
		{"Asia/Calcutta", true},
		{"Asia/Kolkata", true},
		{"", false},
		{"Local", false},
		{"Mars/Olympus_Mons", false},
		{"not a zone", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTimezone(tt.name); got != tt.expected {
				t.Errorf("IsTimezone(%q) = %v, want %v", tt.name, got, tt.expected)
			}
		})
	}
}

func TestLoadLocation(t *testing.T) {
	loc, err := LoadLocation("Asia/Calcutta")
	if err != nil {
		t.Fatalf("LoadLocation(Asia/Calcutta) error = %v", err)
	}
	if _, offset := time.Date(2024, 1, 1, 0, 0, 0, 0, loc).Zone(); offset != 5*3600+1800 {
		t.Errorf("offset = %d", offset)
	}

	if _, err := LoadLocation("Local"); !huerror.HasCode(err, huerror.CodeInvalidInput) {
		t.Errorf("LoadLocation(Local) error = %v", err)
	}
}

func TestGenerateDateRange(t *testing.T) {
	tests := []struct {
		name      string
		start     time.Time
		end       time.Time
		inclusive bool
		expected  []string
	}{
		{"inclusive", date(2024, 1, 1), date(2024, 1, 3), true, []string{"2024-01-01", "2024-01-02", "2024-01-03"}},
		{"exclusive", date(2024, 1, 1), date(2024, 1, 3), false, []string{"2024-01-01", "2024-01-02"}},
		{"same day inclusive", date(2024, 1, 1), date(2024, 1, 1), true, []string{"2024-01-01"}},
		{"same day exclusive", date(2024, 1, 1), date(2024, 1, 1), false, []string{}},
		{"start after end inclusive", date(2024, 1, 5), date(2024, 1, 1), true, []string{"2024-01-05"}},
		{"start after end exclusive", date(2024, 1, 5), date(2024, 1, 1), false, []string{}},
		{"leap day", date(2024, 2, 28), date(2024, 3, 1), true, []string{"2024-02-28", "2024-02-29", "2024-03-01"}},
		{"unaligned end inclusive", date(2024, 1, 1), time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC), true, []string{"2024-01-01", "2024-01-02", "2024-01-03"}},
		{"unaligned end exclusive", date(2024, 1, 1), time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC), false, []string{"2024-01-01", "2024-01-02"}},
		{"midday start inclusive", time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), date(2024, 1, 3), true, []string{"2024-01-01", "2024-01-02", "2024-01-03"}},
		{"midday start exclusive", time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), date(2024, 1, 3), false, []string{"2024-01-01", "2024-01-02"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateDateRange(tt.start, tt.end, tt.inclusive)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("GenerateDateRange() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDateRangeAcrossDST(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("zone database unavailable: %v", err)
	}

	start := time.Date(2024, 3, 30, 9, 0, 0, 0, berlin)
	end := time.Date(2024, 4, 1, 9, 0, 0, 0, berlin)

	for d := range DateRange(start, end, true) {
		if d.Hour() != 9 {
			t.Errorf("%v lost its wall-clock hour", d)
		}
	}
	if n := len(GenerateDateRangeTimes(start, end, true)); n != 3 {
		t.Errorf("got %d days, want 3", n)
	}
}

func TestDateRangeIsRestartableAndStoppable(t *testing.T) {
	seq := DateRange(date(2024, 1, 1), date(2024, 1, 10), false)

	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}
	if a, b := count(), count(); a != 9 || b != 9 {
		t.Errorf("counts = %d, %d; want 9, 9", a, b)
	}

	var first []time.Time
	for d := range seq {
		first = append(first, d)
		if len(first) == 2 {
			break
		}
	}
	if len(first) != 2 || !first[1].Equal(date(2024, 1, 2)) {
		t.Errorf("early break yielded %v", first)
	}
}

func TestGenerateDateRangeFromStrings(t *testing.T) {
	got, err := GenerateDateRangeFromStrings("2024-01-01", "01/03/2024", true)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"2024-01-01", "2024-01-02", "2024-01-03"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	if _, err := GenerateDateRangeFromStrings("2024-01-01", "soon", true); !huerror.HasCode(err, huerror.CodeParseError) {
		t.Errorf("error = %v", err)
	}
}

func TestFormatTime12HR(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"14:05", "02:05 PM"},
		{"00:30", "00:30 AM"},
		{"09:07:59", "09:07 AM"},
		{"12:00", "00:00 PM"},
		{"23:59", "11:59 PM"},
		{"7:5", "07:05 AM"},
		{"", ""},
		{"noon", "noon"},
		{"ab:cd", "ab:cd"},
		{"14", "14"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := FormatTime12HR(tt.input); got != tt.expected {
				t.Errorf("FormatTime12HR(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
