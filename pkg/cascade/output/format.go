// Package output formats processing results for the calling backend.
package output

import (
	"fmt"
	"strings"
)

// Format selects the serialization applied to a processing result.
type Format string

const (
	// FormatJSON emits the full result envelope as pretty-printed JSON.
	FormatJSON Format = "json"
	// FormatCSV emits accepted records as a flat 12-column CSV document.
	FormatCSV Format = "csv"
	// FormatPHP emits a JSON structure shaped for PHP array consumption,
	// with empty strings standing in for absent values.
	FormatPHP Format = "php"
)

// ParseFormat parses a format name, case-insensitively. "php", "phparray"
// and "php-array" all select the PHP array format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	case "php", "phparray", "php-array":
		return FormatPHP, nil
	default:
		return "", fmt.Errorf("unknown output format: %s", s)
	}
}
