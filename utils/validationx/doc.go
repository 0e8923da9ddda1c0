// File: doc.go
// Title: Package Documentation for validationx
// Description: Package validationx reports whether text is well-formed
//              JSON, YAML or TOML.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial package documentation

// Package validationx reports whether text is a well-formed JSON, YAML or
// TOML document.
//
// The Is* predicates answer yes or no. Check returns the decoder's reason
// wrapped in a structured error, which is what a caller shows to a user:
//
//	if err := validationx.Check(validationx.FormatTOML, text); err != nil {
//		fmt.Println(huerrors.String(err))
//	}
//
// Only syntax is checked. None of the functions apply a schema.
package validationx
