// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so callers and log sinks can
//              tell input mistakes apart from environment failures.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates bad caller input; retrying with the same input fails again
	SeverityLow Severity = iota

	// SeverityMedium is the default for errors without a more specific classification
	SeverityMedium

	// SeverityHigh indicates the environment refused an operation (spawn, permissions)
	SeverityHigh

	// SeverityCritical indicates the process cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeEnvironmentError:
		return SeverityCritical
	case CodeProcessSpawnFailed, CodePermissionDenied:
		return SeverityHigh
	case CodeInvalidInput, CodeNotFound, CodeValidationFailed, CodeInvalidFormat,
		CodeValueOutOfRange, CodeParseError, CodeInvalidConfig:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
