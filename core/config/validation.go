// File: validation.go
// Title: Configuration Validation
// Description: Checks configuration values against simple typed rules
//              and collects every violation instead of stopping at the
//              first one.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation of validation

package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	huerror "github.com/msto63/helperutil/core/error"
)

// ValidationRule defines the criteria for one key. Min and Max bound the
// value of ints and the rune length of strings; nil means unbounded.
type ValidationRule struct {
	Required bool
	Type     string // "string", "int", "bool" or "duration"
	Min      *int
	Max      *int
}

// ValidationRules maps configuration keys to their rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Err converts a failed result into a structured error, or nil
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return huerror.New("invalid configuration: "+strings.Join(r.Errors, "; ")).
		WithCode(huerror.CodeInvalidConfig).
		WithOperation("config.validate").
		WithDetail("violations", len(r.Errors))
}

// Bound returns a pointer for use as ValidationRule.Min or Max
func Bound(n int) *int {
	return &n
}

// Validate checks the configuration against rules. Environment overrides
// are validated the same way as file values.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	result := &ValidationResult{Valid: true}

	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}

	return result
}

func (c *Config) validateField(key string, rule ValidationRule) error {
	if !c.Has(key) {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		return nil
	}

	raw := c.rawValue(key)

	switch rule.Type {
	case "", "string":
		s := fmt.Sprintf("%v", raw)
		return checkBounds(key, utf8.RuneCountInString(s), rule, "length")
	case "int":
		n, err := toInt(raw)
		if err != nil {
			return fmt.Errorf("field '%s' must be an integer, got %v", key, raw)
		}
		return checkBounds(key, n, rule, "value")
	case "bool":
		if _, err := strconv.ParseBool(fmt.Sprintf("%v", raw)); err != nil {
			return fmt.Errorf("field '%s' must be a boolean, got %v", key, raw)
		}
	case "duration":
		if _, ok := raw.(int64); ok {
			return nil
		}
		if _, ok := raw.(int); ok {
			return nil
		}
		if _, ok := parseDuration(fmt.Sprintf("%v", raw)); !ok {
			return fmt.Errorf("field '%s' must be a valid duration, got '%v'", key, raw)
		}
	default:
		return fmt.Errorf("unknown validation type: %s", rule.Type)
	}

	return nil
}

// rawValue prefers the environment override over the file value
func (c *Config) rawValue(key string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue, ok := c.getEnvValue(key); ok {
		return envValue
	}
	return c.getValue(key)
}

func toInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float64:
		if n != float64(int64(n)) {
			return 0, fmt.Errorf("not a whole number: %v", n)
		}
		return int(n), nil
	case string:
		return strconv.Atoi(strings.TrimSpace(n))
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
}

func checkBounds(key string, n int, rule ValidationRule, what string) error {
	if rule.Min != nil && n < *rule.Min {
		return fmt.Errorf("field '%s' %s %d is less than minimum %d", key, what, n, *rule.Min)
	}
	if rule.Max != nil && n > *rule.Max {
		return fmt.Errorf("field '%s' %s %d is greater than maximum %d", key, what, n, *rule.Max)
	}
	return nil
}
