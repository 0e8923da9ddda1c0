// File: timex.go
// Title: Time Parsing and Timezone Utilities
// Description: Implements layout-list parsing of time and date strings and
//              cached IANA timezone lookups.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-12
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-14 v0.1.1: Parse errors carry PARSE_ERROR code

package timex

import (
	"strings"
	"sync"
	"time"
	_ "time/tzdata" // zone lookups must not depend on the host database

	huerrors "github.com/msto63/helperutil/core/errors"
)

// Common time formats
const (
	ISO8601         = "2006-01-02T15:04:05Z07:00"
	ISO8601DateTime = "2006-01-02T15:04:05"

	BusinessDate     = "2006-01-02"
	BusinessDateTime = "2006-01-02 15:04:05"
	BusinessMinute   = "2006-01-02 15:04"

	DisplayDate     = "January 2, 2006"
	DisplayDateTime = "January 2, 2006 at 3:04 PM"

	ShortDate     = "01/02/2006"
	ShortDateTime = "01/02/2006 15:04"

	CompactDate     = "20060102"
	CompactDateTime = "20060102150405"

	LogTimestamp = "2006-01-02 15:04:05.000"
)

var parseLayouts = []string{
	time.RFC3339,
	ISO8601DateTime,
	BusinessDateTime,
	BusinessMinute,
	BusinessDate,
	LogTimestamp,
	ShortDateTime,
	ShortDate,
	DisplayDateTime,
	DisplayDate,
	CompactDateTime,
	CompactDate,
	time.RFC822,
	time.RFC822Z,
	time.RFC850,
	time.RFC1123,
	time.RFC1123Z,
}

var dateLayouts = []string{
	BusinessDate,
	"2006-1-2",
	ShortDate,
	"1/2/2006",
	"2.1.2006",
	CompactDate,
	DisplayDate,
}

// calcuttaAlias is accepted even where the zone database has dropped it
const calcuttaAlias = "Asia/Calcutta"

// Timezone cache for loaded locations
var (
	timezoneCache = make(map[string]*time.Location)
	timezoneMu    sync.RWMutex
)

// Parse parses value with the first matching layout from a list of common
// formats. Values without a zone are UTC.
func Parse(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value != "" {
		for _, layout := range parseLayouts {
			if t, err := time.Parse(layout, value); err == nil {
				return t, nil
			}
		}
	}
	return time.Time{}, huerrors.TimexParseError("parse", value, parseLayouts)
}

// ParseDate parses a date-only string
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value != "" {
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, value); err == nil {
				return t, nil
			}
		}
	}
	return time.Time{}, huerrors.TimexParseError("parse_date", value, dateLayouts)
}

// IsTimezone reports whether name is a valid IANA timezone identifier
func IsTimezone(name string) bool {
	if name == "" || name == "Local" {
		return false
	}
	if name == calcuttaAlias {
		return true
	}
	_, err := getCachedLocation(name)
	return err == nil
}

// LoadLocation returns the named location, accepting the same names as
// IsTimezone
func LoadLocation(name string) (*time.Location, error) {
	if !IsTimezone(name) {
		return nil, huerrors.InvalidInput(huerrors.ModuleTimex, "load_location", name, "an IANA timezone name")
	}
	loc, err := getCachedLocation(name)
	if err != nil && name == calcuttaAlias {
		return getCachedLocation("Asia/Kolkata")
	}
	return loc, err
}

func getCachedLocation(tz string) (*time.Location, error) {
	timezoneMu.RLock()
	if loc, exists := timezoneCache[tz]; exists {
		timezoneMu.RUnlock()
		return loc, nil
	}
	timezoneMu.RUnlock()

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, err
	}

	timezoneMu.Lock()
	timezoneCache[tz] = loc
	timezoneMu.Unlock()

	return loc, nil
}
