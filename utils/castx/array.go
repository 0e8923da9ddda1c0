// File: array.go
// Title: Container Shape Predicates
// Description: Classifies Go containers as sequential (keys 0..n-1 in
//              order) or associative.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package castx

import "reflect"

// Entry is a single key/value pair of an OrderedMap
type Entry struct {
	Key   any
	Value any
}

// OrderedMap is a mapping that remembers insertion order. Keys must be
// comparable.
type OrderedMap []Entry

// Set appends key, or replaces the value of an existing key in place
func (m OrderedMap) Set(key, value any) OrderedMap {
	for i := range m {
		if m[i].Key == key {
			m[i].Value = value
			return m
		}
	}
	return append(m, Entry{Key: key, Value: value})
}

// Get returns the value stored under key
func (m OrderedMap) Get(key any) (any, bool) {
	for _, e := range m {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// IsSequentialArray reports whether v is a container whose keys are exactly
// 0..n-1 in order. Slices and arrays always are; maps are when their integer
// keys form that set; OrderedMap is checked position by position. Empty
// containers are sequential. Anything else is false.
func IsSequentialArray(v any) bool {
	sequential, container := classify(v)
	return container && sequential
}

// IsAssociativeArray reports whether v is a container that is not
// sequential. Non-containers are false.
func IsAssociativeArray(v any) bool {
	sequential, container := classify(v)
	return container && !sequential
}

func classify(v any) (sequential, container bool) {
	if m, ok := v.(OrderedMap); ok {
		for i, e := range m {
			k, ok := intKey(reflect.ValueOf(e.Key))
			if !ok || k != int64(i) {
				return false, true
			}
		}
		return true, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return true, true
	case reflect.Map:
		n := int64(rv.Len())
		// int(1) and int64(1) are distinct keys of a map[any]any
		seen := make([]bool, n)
		iter := rv.MapRange()
		for iter.Next() {
			k, ok := intKey(iter.Key())
			if !ok || k < 0 || k >= n || seen[k] {
				return false, true
			}
			seen[k] = true
		}
		return true, true
	default:
		return false, false
	}
}

func intKey(k reflect.Value) (int64, bool) {
	if k.Kind() == reflect.Interface {
		k = k.Elem()
	}
	switch k.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return k.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := k.Uint()
		if u > 1<<62 {
			return -1, true
		}
		return int64(u), true
	default:
		return 0, false
	}
}
