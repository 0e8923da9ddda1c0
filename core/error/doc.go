// File: doc.go
// Title: Package Documentation for error
// Description: Package error provides the structured error type used by every
//              helperutil package. Errors carry a code, a severity, free-form
//              details and a captured stack trace.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

// Package error provides structured errors for helperutil.
//
// Errors are created with New or Wrap and decorated with the fluent With*
// setters:
//
//	err := error.New("unable to parse date").
//		WithCode(error.CodeParseError).
//		WithOperation("timex.Parse").
//		WithDetail("input", value)
//
// Callers inspect errors with HasCode and GetCode, which walk the wrap chain,
// so an *Error wrapped by fmt.Errorf("...: %w", err) is still recognized.
//
// The package name shadows the builtin error type inside this package only;
// importers conventionally alias it:
//
//	import huerror "github.com/msto63/helperutil/core/error"
package error
