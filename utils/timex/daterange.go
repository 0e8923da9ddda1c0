// File: daterange.go
// Title: Calendar Day Ranges
// Description: Generates one element per calendar day between two times,
//              lazily or collected.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation
// - 2026-10-15 v0.1.1: Inclusive ranges end on the first day at or past end

package timex

import (
	"iter"
	"slices"
	"time"
)

// DateRange yields start, start+1 day, ... while the element is before end.
// With inclusiveEnd it then yields the first element that is not before end,
// which is end itself when the steps line up with it. A start at or after
// end therefore yields just start when inclusive and nothing otherwise.
// The sequence can be ranged over any number of times.
func DateRange(start, end time.Time, inclusiveEnd bool) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		d := start
		for ; d.Before(end); d = d.AddDate(0, 0, 1) {
			if !yield(d) {
				return
			}
		}
		if inclusiveEnd {
			yield(d)
		}
	}
}

// GenerateDateRangeTimes collects DateRange into a slice
func GenerateDateRangeTimes(start, end time.Time, inclusiveEnd bool) []time.Time {
	return slices.AppendSeq([]time.Time{}, DateRange(start, end, inclusiveEnd))
}

// GenerateDateRange collects DateRange as YYYY-MM-DD strings
func GenerateDateRange(start, end time.Time, inclusiveEnd bool) []string {
	dates := []string{}
	for d := range DateRange(start, end, inclusiveEnd) {
		dates = append(dates, d.Format(BusinessDate))
	}
	return dates
}

// GenerateDateRangeFromStrings parses both bounds with ParseDate and
// returns GenerateDateRange of the result
func GenerateDateRangeFromStrings(start, end string, inclusiveEnd bool) ([]string, error) {
	from, err := ParseDate(start)
	if err != nil {
		return nil, err
	}
	to, err := ParseDate(end)
	if err != nil {
		return nil, err
	}
	return GenerateDateRange(from, to, inclusiveEnd), nil
}
