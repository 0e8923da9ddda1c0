// File: example_test.go
// Title: Example Tests for stringx
// Description: Executable examples that double as documentation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13

package stringx_test

import (
	"fmt"

	"github.com/msto63/helperutil/utils/stringx"
)

func ExampleFormatInt() {
	fmt.Println(stringx.FormatInt(5, 3, "0"))
	fmt.Println(stringx.FormatInt(12345, 3, "0"))
	// Output:
	// 005
	// 12345
}

func ExampleTrimLength() {
	fmt.Println(stringx.TrimLength("abcdefghij", 5, "..."))
	// Output:
	// ab...
}

func ExampleMask() {
	fmt.Println(stringx.Mask("1234567890"))
	fmt.Println(stringx.Mask("4111111111111111", stringx.MaskOptions{Start: 0, Length: 12, Char: 'X'}))
	// Output:
	// 12****7890
	// XXXXXXXXXXXX1111
}

func ExampleGenerateUniqueID() {
	id, _ := stringx.GenerateUniqueID(12, false, "ord_")
	fmt.Println(len(id), id[:4])
	// Output:
	// 12 ord_
}

func ExampleHasSubString() {
	fmt.Println(stringx.HasSubString("Hello World", "world", false))
	fmt.Println(stringx.HasSubString("Hello World", "world", true))
	// Output:
	// true
	// false
}
