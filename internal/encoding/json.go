// Package encoding provides utilities for encoding data for output.
package encoding

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format is a machine-readable output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat converts a flag value to a Format. The empty string means table.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatTable:
		return FormatTable, nil
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want table, json or yaml)", s)
	}
}

// ToJSONIndent marshals a value to indented JSON bytes with a trailing newline.
// HTML characters are not escaped.
func ToJSONIndent[T any](value T) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(value); err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}

	return buf.Bytes(), nil
}

// ToYAML marshals a value to YAML bytes using two-space indentation.
func ToYAML[T any](value T) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(value); err != nil {
		return nil, fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal YAML: %w", err)
	}

	return buf.Bytes(), nil
}

// Write encodes value in the given machine-readable format to w.
func Write[T any](w io.Writer, format Format, value T) error {
	var (
		data []byte
		err  error
	)

	switch format {
	case FormatJSON:
		data, err = ToJSONIndent(value)
	case FormatYAML:
		data, err = ToYAML(value)
	default:
		return fmt.Errorf("format %q is not machine-readable", format)
	}

	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}
