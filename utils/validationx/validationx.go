// File: validationx.go
// Title: Document Syntax Checks
// Description: JSON, YAML and TOML well-formedness predicates and a Check
//              function returning the decoder error.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package validationx

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	huerrors "github.com/msto63/helperutil/core/errors"
	"github.com/msto63/helperutil/utils/stringx"
)

// Format identifies a document syntax
type Format int

const (
	FormatUnknown Format = iota
	FormatJSON
	FormatYAML
	FormatTOML
)

// String returns the lowercase format name
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// ParseFormat parses "json", "yaml", "yml" or "toml", ignoring case
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return FormatUnknown, huerrors.InvalidInput(huerrors.ModuleValidationx, "parse_format", name, "json, yaml or toml")
	}
}

// FormatFromPath derives the format from a file extension
func FormatFromPath(path string) Format {
	f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return FormatUnknown
	}
	return f
}

// IsJSON reports whether text is a single valid JSON value. Scalars such as
// "42" or "null" count; an empty string does not.
func IsJSON(text string) bool {
	return json.Valid([]byte(text))
}

// IsYAML reports whether text is a valid YAML stream. Blank text is
// rejected.
func IsYAML(text string) bool {
	return checkYAML(text) == nil
}

// IsTOML reports whether text is a valid TOML document. Blank text is
// rejected.
func IsTOML(text string) bool {
	return checkTOML(text) == nil
}

// Check validates text as format and returns an INVALID_FORMAT error
// carrying the decoder message when it is not well-formed
func Check(format Format, text string) error {
	var err error
	switch format {
	case FormatJSON:
		err = checkJSON(text)
	case FormatYAML:
		err = checkYAML(text)
	case FormatTOML:
		err = checkTOML(text)
	default:
		return huerrors.InvalidInput(huerrors.ModuleValidationx, "check", format.String(), "json, yaml or toml")
	}

	if err != nil {
		return huerrors.InvalidFormat(huerrors.ModuleValidationx, "check", stringx.TrimLength(text, 40, stringx.DefaultTrimDelimiter), format.String()).
			WithDetail("reason", err.Error())
	}
	return nil
}

var errBlank = errors.New("document is empty")

func checkJSON(text string) error {
	if json.Valid([]byte(text)) {
		return nil
	}
	if stringx.IsBlank(text) {
		return errBlank
	}

	// json.Valid does not say why; decode once more for the message
	var v interface{}
	dec := json.NewDecoder(strings.NewReader(text))
	if err := dec.Decode(&v); err != nil {
		return err
	}
	return errors.New("unexpected data after top-level value")
}

func checkYAML(text string) error {
	if stringx.IsBlank(text) {
		return errBlank
	}

	dec := yaml.NewDecoder(bytes.NewReader([]byte(text)))
	for {
		var node yaml.Node
		err := dec.Decode(&node)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func checkTOML(text string) error {
	if stringx.IsBlank(text) {
		return errBlank
	}

	var v map[string]interface{}
	_, err := toml.Decode(text, &v)
	return err
}
