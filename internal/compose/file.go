// Package compose applies targeted textual patches to docker-compose files.
// It deliberately works on raw lines and indentation, not parsed YAML: the
// patches must preserve the file's formatting and comments byte-for-byte
// outside the edited region.
package compose

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ReadLines loads a file and splits it into lines without their newline
// terminators. A trailing newline does not produce an empty final element.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	content := strings.TrimSuffix(string(data), "\n")
	if content == "" {
		return nil, nil
	}
	return strings.Split(content, "\n"), nil
}

// WriteLines joins lines with a trailing newline and writes them out.
func WriteLines(path string, lines []string) error {
	return os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644)
}

// CheckWellFormed verifies that content still parses as YAML. The patchers
// run this before writing so a bad edit is reported instead of persisted.
func CheckWellFormed(content string) error {
	var doc map[string]any
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
		return fmt.Errorf("patched compose file is not valid YAML: %w", err)
	}
	return nil
}

// indentOf returns the count of leading whitespace characters.
func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}
