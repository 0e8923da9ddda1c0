// File: array_test.go
// Title: Container Shape Tests
// Description: Tests for IsSequentialArray and IsAssociativeArray.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13

package castx

import "testing"

func TestArrayShape(t *testing.T) {
	tests := []struct {
		name        string
		input       any
		sequential  bool
		associative bool
	}{
		{"slice", []string{"a", "b"}, true, false},
		{"empty slice", []int{}, true, false},
		{"nil slice", []int(nil), true, false},
		{"array", [2]int{1, 2}, true, false},
		{"dense int map", map[int]string{1: "b", 0: "a", 2: "c"}, true, false},
		{"gap in keys", map[int]string{0: "a", 2: "c"}, false, true},
		{"negative key", map[int]string{-1: "a"}, false, true},
		{"string keys", map[string]int{"a": 1}, false, true},
		{"numeric string keys", map[string]int{"0": 1}, false, true},
		{"empty map", map[string]int{}, true, false},
		{"any keys", map[any]int{0: 1, uint8(1): 2}, true, false},
		{"same index twice", map[any]int{0: 1, int64(0): 2}, false, true},
		{"ordered in order", OrderedMap{{0, "a"}, {1, "b"}}, true, false},
		{"ordered out of order", OrderedMap{{1, "b"}, {0, "a"}}, false, true},
		{"ordered string key", OrderedMap{{0, "a"}, {"x", "b"}}, false, true},
		{"empty ordered", OrderedMap{}, true, false},
		{"nil", nil, false, false},
		{"string", "abc", false, false},
		{"int", 42, false, false},
		{"value", Integer(1), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSequentialArray(tt.input); got != tt.sequential {
				t.Errorf("IsSequentialArray() = %v, want %v", got, tt.sequential)
			}
			if got := IsAssociativeArray(tt.input); got != tt.associative {
				t.Errorf("IsAssociativeArray() = %v, want %v", got, tt.associative)
			}
		})
	}
}

func TestOrderedMapSetGet(t *testing.T) {
	m := OrderedMap{}.Set("b", 1).Set("a", 2).Set("b", 3)

	if len(m) != 2 {
		t.Fatalf("len = %d, want 2", len(m))
	}
	if m[0].Key != "b" || m[0].Value != 3 {
		t.Errorf("replacing a key should keep its position: %v", m)
	}
	if v, ok := m.Get("a"); !ok || v != 2 {
		t.Errorf("Get(a) = %v, %v", v, ok)
	}
	if _, ok := m.Get("z"); ok {
		t.Error("Get(z) should miss")
	}
}
