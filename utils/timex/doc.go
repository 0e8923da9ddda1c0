// File: doc.go
// Title: Package Documentation for timex
// Description: Parsing of common date and time layouts, IANA timezone
//              validation, calendar-day ranges and clock formatting.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-15 v0.1.1: Inclusive date range semantics

// Package timex provides time parsing, timezone checks, date ranges and
// 12-hour clock formatting for helperutil.
//
// # Parsing
//
//   - Parse tries RFC3339, ISO8601, business, short, display, compact and
//     RFC822/1123 layouts in turn.
//   - ParseDate accepts date-only layouts such as 2024-01-31, 01/31/2024
//     and 31.1.2024.
//
// Failures are *error.Error values with code PARSE_ERROR.
//
// # Timezones
//
// IsTimezone reports whether a name is a loadable IANA zone. The legacy
// alias Asia/Calcutta is always accepted; "" and "Local" never are.
// Loaded locations are cached.
//
// # Date ranges
//
// DateRange yields one element per calendar day using AddDate(0, 0, 1), so
// wall-clock times survive DST transitions:
//
//	for d := range timex.DateRange(start, end, true) {
//		fmt.Println(d.Format(timex.BusinessDate))
//	}
//
// Stepping stops at the first day that is not before end. With inclusiveEnd
// that day is kept as the last element, so it equals end when the steps line
// up and is the following day otherwise.
//
// GenerateDateRange and GenerateDateRangeTimes collect the same sequence.
//
// # Clock formatting
//
// FormatTime12HR turns "14:05" into "02:05 PM". Hour 0 is rendered as "00"
// and noon as "00 PM".
package timex
