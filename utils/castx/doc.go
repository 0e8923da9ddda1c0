// File: doc.go
// Title: Package Documentation for castx
// Description: Package castx models loosely typed input as a tagged Value
//              and provides null-preserving conversions over it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-12 v0.1.0: Initial package documentation

// Package castx converts loosely typed values without ever panicking.
//
// Input is modelled as a Value, a tagged variant over the kinds Null,
// String, Integer, Double and Bool. Values usually arrive through Of, which
// accepts the dynamic types produced by encoding/json, yaml.v3 or a form
// decoder:
//
//	v, ok := castx.Of(payload["age"])
//
// Three families of functions operate on a Value:
//
// NullOr* keep Null as Null and coerce everything else to the named kind
// using loose rules: numeric prefixes of strings are parsed ("12abc" is 12),
// bools become 1/0 or "1"/"", and only "" and "0" are false strings.
// NullOrString additionally maps blank strings to Null.
//
// Cast* return the payload only when the Value already has the named kind
// and the caller's default otherwise. They never coerce.
//
// IsNullOrZero and IsNullOrEmpty are the matching predicates.
//
// IsSequentialArray and IsAssociativeArray classify arbitrary Go values:
// slices and arrays are sequential, maps are sequential when their keys are
// exactly the integers 0..n-1, and OrderedMap preserves insertion order so
// that {1: a, 0: b} is recognised as associative.
package castx
