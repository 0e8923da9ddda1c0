// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify helperutil failures.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial code set for casting, time, process and config errors

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeTimeout      Code = "TIMEOUT"

	// Validation and parsing
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
	CodeParseError       Code = "PARSE_ERROR"

	// Process execution
	CodeProcessSpawnFailed Code = "PROCESS_SPAWN_FAILED"
	CodePermissionDenied   Code = "PERMISSION_DENIED"

	// Configuration and environment
	CodeConfigError      Code = "CONFIG_ERROR"
	CodeInvalidConfig    Code = "INVALID_CONFIG"
	CodeEnvironmentError Code = "ENVIRONMENT_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeTimeout,
		CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange, CodeParseError,
		CodeProcessSpawnFailed, CodePermissionDenied,
		CodeConfigError, CodeInvalidConfig, CodeEnvironmentError:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange, CodeParseError, CodeInvalidInput:
		return "validation"
	case CodeProcessSpawnFailed, CodePermissionDenied, CodeTimeout:
		return "process"
	case CodeConfigError, CodeInvalidConfig, CodeEnvironmentError:
		return "configuration"
	default:
		return "generic"
	}
}
