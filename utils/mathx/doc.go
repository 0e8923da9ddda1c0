// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides decimal rounding and value limiting.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-13

// Package mathx rounds floats the way people read them and limits values.
//
// RoundOff works on the shortest decimal representation of its input, not
// on the binary value, so 1.005 rounds to 1.01 and 2.675 to 2.68:
//
//	mathx.RoundOff(1.005, 2)                         // 1.01
//	mathx.RoundOffMode(2.5, 0, mathx.RoundHalfEven)  // 2
//	mathx.TrimValue(250, mathx.DefaultTrimLimit)     // 100
package mathx
