// File: cast.go
// Title: Null-Preserving Casts
// Description: Implements the NullOr*, Cast* and IsNullOr* operations over
//              Value.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-12
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-14 v0.1.1: CastBool checks the Bool kind

package castx

import (
	"strings"

	huerrors "github.com/msto63/helperutil/core/errors"
	"github.com/msto63/helperutil/utils/timex"
)

const (
	// DateTimeLayout is the rendering used by NullOrDateTimeString
	DateTimeLayout = "2006-01-02 15:04:05"

	// DateLayout is the rendering used by NullOrDateString
	DateLayout = "2006-01-02"
)

// NullOrString returns Null for Null input and for input whose string form
// is blank; otherwise the string form. It is idempotent.
func NullOrString(v Value) Value {
	if v.IsNull() {
		return Null()
	}
	s := ToString(v)
	if strings.Trim(s, trimCutset) == "" {
		return Null()
	}
	return String(s)
}

// NullOrInteger returns Null for Null input, otherwise the integer coercion
func NullOrInteger(v Value) Value {
	if v.IsNull() {
		return Null()
	}
	return Integer(ToInteger(v))
}

// NullOrDouble returns Null for Null input, otherwise the float coercion
func NullOrDouble(v Value) Value {
	if v.IsNull() {
		return Null()
	}
	return Double(ToDouble(v))
}

// NullOrBool returns Null for Null input, otherwise the bool coercion
func NullOrBool(v Value) Value {
	if v.IsNull() {
		return Null()
	}
	return Bool(ToBool(v))
}

// NullOrDateTimeString parses a String value with timex.Parse and renders
// it as "2006-01-02 15:04:05". Null stays Null.
func NullOrDateTimeString(v Value) (Value, error) {
	return nullOrTime(v, "null_or_date_time_string", DateTimeLayout)
}

// NullOrDateString parses a String value with timex.Parse and renders it
// as "2006-01-02". Null stays Null.
func NullOrDateString(v Value) (Value, error) {
	return nullOrTime(v, "null_or_date_string", DateLayout)
}

func nullOrTime(v Value, op, layout string) (Value, error) {
	switch v.Kind() {
	case KindNull:
		return Null(), nil
	case KindString:
		t, err := timex.Parse(v.s)
		if err != nil {
			return Null(), err
		}
		return String(t.Format(layout)), nil
	default:
		return Null(), huerrors.InvalidInput(huerrors.ModuleCastx, op, v.String(), "a date string or null")
	}
}

// CastString returns the payload of a String value, otherwise def
func CastString(v Value, def string) string {
	if v.kind == KindString {
		return v.s
	}
	return def
}

// CastInteger returns the payload of an Integer value, otherwise def
func CastInteger(v Value, def int64) int64 {
	if v.kind == KindInteger {
		return v.i
	}
	return def
}

// CastDouble returns the payload of a Double value, otherwise def
func CastDouble(v Value, def float64) float64 {
	if v.kind == KindDouble {
		return v.f
	}
	return def
}

// CastBool returns the payload of a Bool value, otherwise def
func CastBool(v Value, def bool) bool {
	if v.kind == KindBool {
		return v.b
	}
	return def
}

// IsNullOrZero reports whether v is Null or coerces to the integer 0
func IsNullOrZero(v Value) bool {
	return v.IsNull() || ToInteger(v) == 0
}

// IsNullOrEmpty reports whether v is Null or exactly the empty string.
// Whitespace is not trimmed.
func IsNullOrEmpty(v Value) bool {
	return v.IsNull() || (v.kind == KindString && v.s == "")
}
