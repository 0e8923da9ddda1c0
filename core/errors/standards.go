// File: standards.go
// Title: Error Standards for helperutil Modules
// Description: Module identifiers and the standard constructors every utils
//              package uses to report failures.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-12
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-14 v0.1.1: Added process spawn/timeout and config constructors

package errors

import (
	"errors"
	"fmt"
	"io/fs"

	huerror "github.com/msto63/helperutil/core/error"
)

// Module identifiers for error categorization
const (
	ModuleStringx     = "stringx"
	ModuleCastx       = "castx"
	ModuleMathx       = "mathx"
	ModuleTimex       = "timex"
	ModuleOsx         = "osx"
	ModuleValidationx = "validationx"
	ModuleConfig      = "config"
)

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *huerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s.%s: expected %s", module, operation, expected).
		Code(huerror.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Build()
}

// InvalidFormat creates a standardized format error
func InvalidFormat(module, operation string, input interface{}, expectedFormat string) *huerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid format in %s.%s", module, operation).
		Code(huerror.CodeInvalidFormat).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Build()
}

// OutOfRange creates a standardized out of range error
func OutOfRange(module, operation string, value, min, max interface{}) *huerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("value out of range in %s.%s", module, operation).
		Code(huerror.CodeValueOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Build()
}

// OperationFailed creates a standardized operation failure error
func OperationFailed(module, operation string, cause error) *huerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s operation failed", module, operation).
		Cause(cause).
		Code(huerror.CodeInternal).
		Severity(huerror.SeverityHigh).
		Build()
}

// TimexParseError reports a value that matches none of the accepted layouts
func TimexParseError(operation, input string, layouts []string) *huerror.Error {
	return NewErrorBuilder(ModuleTimex).
		Operation(operation).
		Messagef("unable to parse time string: %q", input).
		Code(huerror.CodeParseError).
		Detail("input", input).
		Detail("layouts", len(layouts)).
		Build()
}

// OsxSpawnFailed reports that a child process could not be started.
// Permission problems are classified separately from other spawn failures.
func OsxSpawnFailed(command string, cause error) *huerror.Error {
	code := huerror.CodeProcessSpawnFailed
	if errors.Is(cause, fs.ErrPermission) {
		code = huerror.CodePermissionDenied
	}

	return NewErrorBuilder(ModuleOsx).
		Operation("exec").
		Messagef("failed to start %q", command).
		Cause(cause).
		Code(code).
		Severity(huerror.SeverityHigh).
		Detail("command", command).
		Build()
}

// OsxTimeout reports that a child process was killed after its deadline
func OsxTimeout(command string, cause error) *huerror.Error {
	return NewErrorBuilder(ModuleOsx).
		Operation("exec").
		Messagef("%q did not finish before its deadline", command).
		Cause(cause).
		Code(huerror.CodeTimeout).
		Detail("command", command).
		Build()
}

// ConfigError reports a configuration file that cannot be read or decoded
func ConfigError(operation, path string, cause error) *huerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation(operation).
		Messagef("configuration %s failed for %s", operation, path).
		Cause(cause).
		Code(huerror.CodeConfigError).
		Detail("path", path).
		Build()
}

// ExtractDetails extracts all details from the outermost structured error
func ExtractDetails(err error) map[string]interface{} {
	var e *huerror.Error
	if errors.As(err, &e) {
		return e.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}

// String renders module.operation for diagnostics
func String(err error) string {
	module, operation := ExtractModule(err), ExtractOperation(err)
	if module == "" {
		return err.Error()
	}
	return fmt.Sprintf("[%s.%s] %s", module, operation, err.Error())
}
