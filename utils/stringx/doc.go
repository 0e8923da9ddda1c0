// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides identifier generation and the
//              string formatting helpers used across helperutil.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-12 v0.1.0: Initial package documentation

// Package stringx provides identifier generation and string formatting
// helpers.
//
// # Identifiers
//
// GenerateUniqueID and GeneratePin produce short random tokens from a fast,
// non-cryptographic source. They are meant for reference numbers and
// one-time display codes, not secrets. RandomString and its variants draw
// from crypto/rand and should be used whenever the token guards access:
//
//	id, _ := stringx.GenerateUniqueID(12, false, "ord_")  // "ord_k3v9x0qa"
//	pin := stringx.GeneratePin(6)                         // "048213"
//	token, _ := stringx.RandomURLSafe(32)
//
// # Formatting
//
// All length arithmetic counts runes, never bytes, so multi-byte input is
// never split inside a character:
//
//	stringx.FormatInt(5, 3, "0")              // "005"
//	stringx.TrimLength("abcdefghij", 5, "...") // "ab..."
//	stringx.Mask("1234567890")                 // "12****7890"
//	stringx.HasSubString("Straße", "STRASSE", false) // true
//
// The functions are stateless and safe for concurrent use.
package stringx
