// Package common holds helpers shared by the CLI actions.
package common

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by the --format flag.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// NewLogger builds the structured logger shared by all actions.
// Quiet mode keeps errors only.
func NewLogger(quiet bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if quiet {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// ParseFormat normalizes and validates a --format flag value. An empty
// value falls back to text.
func ParseFormat(s string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(s))
	switch format {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("unknown format %q (use text, json, or yaml)", s)
	}
}

// Render marshals v for machine-readable output. JSON is the default;
// FormatYAML switches to YAML.
func Render(v any, format string) ([]byte, error) {
	if format == FormatYAML {
		return yaml.Marshal(v)
	}
	return json.MarshalIndent(v, "", "  ")
}

// ShortID trims a uuid to its first block for display. Any prefix of the
// full id works as a lookup key.
func ShortID(id string) string {
	if i := strings.Index(id, "-"); i > 0 {
		return id[:i]
	}
	return id
}
