// File: value.go
// Title: Tagged Value Variant
// Description: Defines Value, the immutable sum type over Null, String,
//              Integer, Double and Bool, and its constructors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package castx

import (
	"math"
	"strconv"
)

// Kind identifies which payload a Value carries
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindInteger
	KindDouble
	KindBool
)

// String returns the lower-case kind name
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindDouble:
		return "double"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Value is an immutable tagged variant. The zero Value is Null.
type Value struct {
	kind Kind
	s    string
	i    int64
	f    float64
	b    bool
}

// Null returns the Null value
func Null() Value { return Value{} }

// String wraps a string
func String(s string) Value { return Value{kind: KindString, s: s} }

// Integer wraps an integer
func Integer(i int64) Value { return Value{kind: KindInteger, i: i} }

// Double wraps a float
func Double(f float64) Value { return Value{kind: KindDouble, f: f} }

// Bool wraps a boolean
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Of converts a dynamic Go value into a Value. It reports false for types
// outside the five kinds; the returned Value is then Null.
// Unsigned integers above math.MaxInt64 become Doubles.
func Of(v any) (Value, bool) {
	switch x := v.(type) {
	case nil:
		return Null(), true
	case Value:
		return x, true
	case string:
		return String(x), true
	case bool:
		return Bool(x), true
	case int:
		return Integer(int64(x)), true
	case int8:
		return Integer(int64(x)), true
	case int16:
		return Integer(int64(x)), true
	case int32:
		return Integer(int64(x)), true
	case int64:
		return Integer(x), true
	case uint:
		return ofUint(uint64(x)), true
	case uint8:
		return Integer(int64(x)), true
	case uint16:
		return Integer(int64(x)), true
	case uint32:
		return Integer(int64(x)), true
	case uint64:
		return ofUint(x), true
	case float32:
		return Double(float64(x)), true
	case float64:
		return Double(x), true
	default:
		return Null(), false
	}
}

func ofUint(u uint64) Value {
	if u > math.MaxInt64 {
		return Double(float64(u))
	}
	return Integer(int64(u))
}

// Kind returns the variant tag
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is Null
func (v Value) IsNull() bool { return v.kind == KindNull }

// Interface returns the payload as a plain Go value, nil for Null
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.s
	case KindInteger:
		return v.i
	case KindDouble:
		return v.f
	case KindBool:
		return v.b
	default:
		return nil
	}
}

// String renders v for diagnostics: null, "quoted", 42, 1.5 or true
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return strconv.Quote(v.s)
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	case KindDouble:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return "null"
	}
}
