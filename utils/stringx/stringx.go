// File: stringx.go
// Title: String Formatting Utilities
// Description: Implements rune-aware padding, trimming, substring search
//              and name formatting.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-12
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-14 v0.1.1: HasSubString uses full Unicode case folding

package stringx

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

const (
	// DefaultTrimLength is the length TrimLength callers use when none is given
	DefaultTrimLength = 99

	// DefaultTrimDelimiter is appended to trimmed values
	DefaultTrimDelimiter = "..."

	// DefaultPadPrefix is the padding FormatInt uses for an empty prefix
	DefaultPadPrefix = "0"
)

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank returns true if the string contains non-whitespace characters.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// FormatInt left-pads the decimal form of number to exactly length runes by
// repeating prefix. A multi-rune prefix is cut on its last repetition.
// Numbers that are already long enough are returned unpadded, never
// truncated. An empty prefix pads with "0".
func FormatInt(number int64, length int, prefix string) string {
	digits := strconv.FormatInt(number, 10)

	missing := length - len(digits)
	if missing <= 0 {
		return digits
	}

	if prefix == "" {
		prefix = DefaultPadPrefix
	}
	pad := []rune(prefix)

	var b strings.Builder
	b.Grow(missing*utf8.UTFMax + len(digits))
	for i := 0; i < missing; i++ {
		b.WriteRune(pad[i%len(pad)])
	}
	b.WriteString(digits)

	return b.String()
}

// TrimLength shortens value when it has more than length runes. The result
// keeps the first length-runes(delimiter) runes, or none if the delimiter is
// longer than length, followed by delimiter.
func TrimLength(value string, length int, delimiter string) string {
	runes := []rune(value)
	if len(runes) <= length {
		return value
	}

	keep := max(length-utf8.RuneCountInString(delimiter), 0)
	return string(runes[:keep]) + delimiter
}

// HasSubString reports whether needle occurs in haystack. Without
// caseSensitive both sides are case folded first, so "ß" matches "SS".
// An empty needle always matches.
func HasSubString(haystack, needle string, caseSensitive bool) bool {
	if caseSensitive {
		return strings.Contains(haystack, needle)
	}

	// A Caser keeps state and must not be shared between goroutines.
	fold := cases.Fold()
	return strings.Contains(fold.String(haystack), fold.String(needle))
}

// FullName joins first and last with a single space. An empty last name
// yields first unchanged.
func FullName(first, last string) string {
	if last == "" {
		return first
	}
	return first + " " + last
}
