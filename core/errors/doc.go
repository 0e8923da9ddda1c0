// File: doc.go
// Title: Package Documentation for errors
// Description: Package errors provides module-scoped constructors for the
//              structured helperutil error type.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

// Package errors provides the standard error constructors shared by all
// helperutil packages.
//
// Every constructor records the originating module and operation as details,
// so callers can route on them without string matching:
//
//	if errors.IsModuleOperation(err, errors.ModuleOsx, "exec") { ... }
//
// Use these constructors instead of fmt.Errorf or errors.New inside the
// utils packages.
package errors
