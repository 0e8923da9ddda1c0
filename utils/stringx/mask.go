// File: mask.go
// Title: Value Masking
// Description: Replaces the middle of a value with a placeholder character
//              while keeping a visible prefix and suffix.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package stringx

import "strings"

// MaskLengthAuto selects the automatic masking length
const MaskLengthAuto = -1

// MaskOptions controls Mask. A negative Length selects the automatic length;
// a zero Char selects '*'.
type MaskOptions struct {
	Start  int
	Length int
	Char   rune
}

// DefaultMaskOptions returns Start=2, automatic length and '*'
func DefaultMaskOptions() MaskOptions {
	return MaskOptions{
		Start:  2,
		Length: MaskLengthAuto,
		Char:   '*',
	}
}

// Mask hides part of value. The automatic length is runes-6 when that is
// positive, otherwise runes-2. Start and length are clamped to the value,
// so the result always has the same rune count as the input.
func Mask(value string, opts ...MaskOptions) string {
	o := DefaultMaskOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.Char == 0 {
		o.Char = '*'
	}

	runes := []rune(value)
	n := len(runes)

	length := o.Length
	if length < 0 {
		length = autoMaskLength(n)
	}

	start := min(max(o.Start, 0), n)
	length = min(max(length, 0), n-start)

	var b strings.Builder
	b.Grow(len(value) + length*4)
	b.WriteString(string(runes[:start]))
	b.WriteString(strings.Repeat(string(o.Char), length))
	b.WriteString(string(runes[start+length:]))

	return b.String()
}

func autoMaskLength(n int) int {
	if n-6 > 0 {
		return n - 6
	}
	return n - 2
}
