package utils

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/afero"
)

// JSON is the codec used for every token file the tool reads or writes.
// Numbers are kept as json.Number so source values round-trip unchanged,
// and HTML characters are written as-is.
var JSON = jsoniter.Config{
	EscapeHTML:             false,
	UseNumber:              true,
	ValidateJsonRawMessage: true,
}.Froze()

const jsonIndent = "  "

// ReadJSON reads path from fsys and decodes it into v.
func ReadJSON(fsys afero.Fs, path string, v any) error {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := JSON.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// MarshalPretty encodes v with two-space indentation and no trailing newline.
func MarshalPretty(v any) ([]byte, error) {
	return JSON.MarshalIndent(v, "", jsonIndent)
}

// WriteJSON encodes v with MarshalPretty and writes it to path.
func WriteJSON(fsys afero.Fs, path string, v any) error {
	data, err := MarshalPretty(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := afero.WriteFile(fsys, path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Exists reports whether path exists on fsys. Stat errors other than not-exist are returned.
func Exists(fsys afero.Fs, path string) (bool, error) {
	return afero.Exists(fsys, path)
}
