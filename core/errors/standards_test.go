// File: standards_test.go
// Title: Error Standards Tests
// Description: Tests for the fluent builder and the module constructors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-14

package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"testing"

	huerror "github.com/msto63/helperutil/core/error"
)

func TestErrorBuilder(t *testing.T) {
	t.Run("basic error creation", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Message("test error").
			Detail("key", "value").
			Severity(huerror.SeverityHigh).
			Build()

		details := err.Details()
		if details["module"] != "testmodule" {
			t.Errorf("Expected module 'testmodule', got %v", details["module"])
		}
		if details["operation"] != "test_op" {
			t.Errorf("Expected operation 'test_op', got %v", details["operation"])
		}
		if details["key"] != "value" {
			t.Errorf("Expected detail key 'value', got %v", details["key"])
		}
		if err.Severity() != huerror.SeverityHigh {
			t.Errorf("Expected high severity, got %v", err.Severity())
		}
		if err.Operation() != "testmodule.test_op" {
			t.Errorf("Expected operation path 'testmodule.test_op', got %q", err.Operation())
		}
	})

	t.Run("error with cause", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Cause(cause).
			Build()

		if !errors.Is(err, cause) {
			t.Error("Expected error to wrap the cause")
		}
	})

	t.Run("auto-generated message", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").Operation("test_op").Build()
		if err.Error() != "testmodule.test_op failed" {
			t.Errorf("Expected auto message, got %q", err.Error())
		}
		if err.Code() != huerror.CodeInternal {
			t.Errorf("Expected default code INTERNAL, got %v", err.Code())
		}
	})
}

func TestInvalidInput(t *testing.T) {
	err := InvalidInput(ModuleStringx, "generate_unique_id", 3, "length >= len(prefix)")

	if err.Code() != huerror.CodeInvalidInput {
		t.Errorf("Code() = %v", err.Code())
	}
	if !IsModuleOperation(err, ModuleStringx, "generate_unique_id") {
		t.Errorf("IsModuleOperation failed for %v", err.Details())
	}
	if err.Severity() != huerror.SeverityLow {
		t.Errorf("Severity() = %v; want low", err.Severity())
	}
}

func TestTimexParseError(t *testing.T) {
	err := TimexParseError("parse", "not a date", []string{"2006-01-02"})

	if !huerror.HasCode(err, huerror.CodeParseError) {
		t.Errorf("expected PARSE_ERROR, got %v", err.Code())
	}
	if ExtractModule(err) != ModuleTimex {
		t.Errorf("ExtractModule() = %q", ExtractModule(err))
	}
}

func TestOsxSpawnFailed(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		err := OsxSpawnFailed("nope", exec.ErrNotFound)
		if err.Code() != huerror.CodeProcessSpawnFailed {
			t.Errorf("Code() = %v", err.Code())
		}
		if !errors.Is(err, exec.ErrNotFound) {
			t.Error("cause not preserved")
		}
		if err.Severity() != huerror.SeverityHigh {
			t.Errorf("Severity() = %v", err.Severity())
		}
	})

	t.Run("permission denied", func(t *testing.T) {
		cause := &fs.PathError{Op: "fork/exec", Path: "/tmp/x", Err: fs.ErrPermission}
		err := OsxSpawnFailed("/tmp/x", cause)
		if err.Code() != huerror.CodePermissionDenied {
			t.Errorf("Code() = %v; want PERMISSION_DENIED", err.Code())
		}
	})
}

func TestOsxTimeout(t *testing.T) {
	err := OsxTimeout("sleep 10", errors.New("signal: killed"))
	if err.Code() != huerror.CodeTimeout {
		t.Errorf("Code() = %v", err.Code())
	}
	if ExtractOperation(err) != "exec" {
		t.Errorf("ExtractOperation() = %q", ExtractOperation(err))
	}
}

func TestExtractFromPlainError(t *testing.T) {
	plain := errors.New("plain")

	if ExtractDetails(plain) != nil {
		t.Error("ExtractDetails on a plain error should be nil")
	}
	if ExtractModule(plain) != "" || ExtractOperation(plain) != "" {
		t.Error("plain errors carry no module or operation")
	}
	if String(plain) != "plain" {
		t.Errorf("String() = %q", String(plain))
	}
}

func TestExtractThroughWrap(t *testing.T) {
	err := fmt.Errorf("loading: %w", ConfigError("load", "/etc/x.toml", errors.New("eof")))

	if ExtractModule(err) != ModuleConfig {
		t.Errorf("ExtractModule() = %q", ExtractModule(err))
	}
	if got := String(err); got != "[config.load] loading: configuration load failed for /etc/x.toml: eof" {
		t.Errorf("String() = %q", got)
	}
}
