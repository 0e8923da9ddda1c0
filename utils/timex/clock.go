// File: clock.go
// Title: 12-Hour Clock Formatting
// Description: Converts 24-hour "HH:MM[:SS]" strings to "hh:mm AM|PM".
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package timex

import (
	"strconv"
	"strings"

	"github.com/msto63/helperutil/utils/stringx"
)

// FormatTime12HR converts "HH:MM[:SS]" to "hh:mm AM" or "hh:mm PM". Hours
// from 12 on are PM with 12 subtracted, so noon is "00:.. PM" and midnight
// "00:.. AM". Seconds are dropped. Input that is empty or does not begin
// with two integer components is returned unchanged.
func FormatTime12HR(value string) string {
	parts := strings.SplitN(value, ":", 3)
	if len(parts) < 2 {
		return value
	}

	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || hour < 0 {
		return value
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || minutes < 0 {
		return value
	}

	suffix := "AM"
	if hour >= 12 {
		hour -= 12
		suffix = "PM"
	}

	return stringx.FormatInt(int64(hour), 2, "0") + ":" + stringx.FormatInt(int64(minutes), 2, "0") + " " + suffix
}
