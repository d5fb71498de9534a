// Package jsonfile serializes documents the way lintkit writes them to disk:
// two-space indentation, no HTML escaping, trailing newline.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// FileMode is the permission used for every JSON file lintkit writes.
const FileMode = 0644

// Marshal encodes v with stable two-space indentation.
// Characters such as '&' and '<' are kept literal so shell snippets in
// package.json scripts survive a round trip unchanged.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write marshals v and replaces the file at path with the result.
func Write(path string, v any) error {
	data, err := Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, FileMode); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// WriteLines writes one entry per line, used for ignore-list companions.
func WriteLines(path string, lines []string) error {
	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	if err := os.WriteFile(path, buf.Bytes(), FileMode); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
