// File: coerce.go
// Title: Loose Coercion Rules
// Description: Converts any Value to a string, integer, float or bool the
//              way a dynamically typed caller would expect.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package castx

import (
	"math"
	"strconv"
	"strings"
)

// whitespace trimmed before blank checks and numeric parsing
const trimCutset = " \t\n\r\x00\x0B"

// ToString coerces v: Null is "", true is "1", false is "" and numbers use
// their shortest decimal form.
func ToString(v Value) string {
	switch v.kind {
	case KindString:
		return v.s
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	case KindDouble:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		if v.b {
			return "1"
		}
		return ""
	default:
		return ""
	}
}

// ToInteger coerces v. Strings contribute their leading numeric prefix,
// floats truncate toward zero, and NaN, infinities or out-of-range floats
// become 0.
func ToInteger(v Value) int64 {
	switch v.kind {
	case KindString:
		i, f, isFloat := leadingNumber(v.s)
		if isFloat {
			return floatToInt(f)
		}
		return i
	case KindInteger:
		return v.i
	case KindDouble:
		return floatToInt(v.f)
	case KindBool:
		if v.b {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// ToDouble coerces v. Strings contribute their leading numeric prefix.
func ToDouble(v Value) float64 {
	switch v.kind {
	case KindString:
		i, f, isFloat := leadingNumber(v.s)
		if isFloat {
			return f
		}
		return float64(i)
	case KindInteger:
		return float64(v.i)
	case KindDouble:
		return v.f
	case KindBool:
		if v.b {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// ToBool coerces v. Only "", "0", 0, 0.0, false and Null are false.
func ToBool(v Value) bool {
	switch v.kind {
	case KindString:
		return v.s != "" && v.s != "0"
	case KindInteger:
		return v.i != 0
	case KindDouble:
		return v.f != 0
	case KindBool:
		return v.b
	default:
		return false
	}
}

func floatToInt(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0
	}
	return int64(f)
}

// leadingNumber parses the longest numeric prefix of s after leading
// whitespace. Integer-looking prefixes that overflow saturate.
func leadingNumber(s string) (int64, float64, bool) {
	s = strings.TrimLeft(s, trimCutset)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	mantissa := end - digitsStart

	isFloat := false
	if end < len(s) && s[end] == '.' {
		frac := end + 1
		for frac < len(s) && isDigit(s[frac]) {
			frac++
		}
		if mantissa > 0 || frac > end+1 {
			mantissa += frac - end - 1
			end = frac
			isFloat = true
		}
	}
	if mantissa == 0 {
		return 0, 0, false
	}

	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		exp := end + 1
		if exp < len(s) && (s[exp] == '+' || s[exp] == '-') {
			exp++
		}
		expDigits := exp
		for exp < len(s) && isDigit(s[exp]) {
			exp++
		}
		if exp > expDigits {
			end = exp
			isFloat = true
		}
	}

	prefix := s[:end]
	if isFloat {
		f, _ := strconv.ParseFloat(prefix, 64)
		return 0, f, true
	}

	i, err := strconv.ParseInt(prefix, 10, 64)
	if err != nil {
		if prefix[0] == '-' {
			return math.MinInt64, 0, false
		}
		return math.MaxInt64, 0, false
	}
	return i, 0, false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
