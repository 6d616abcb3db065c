// Package detector provides environment detection for log format selection.
package detector

import (
	"os"

	"golang.org/x/term"
)

// LogFormat represents the rendering format of log records.
type LogFormat int

const (
	// FormatAuto automatically detects the appropriate format.
	FormatAuto LogFormat = iota
	// FormatPretty forces colored, human-readable records.
	FormatPretty
	// FormatPlain forces human-readable records without colors.
	FormatPlain
	// FormatJSON forces one JSON object per record.
	FormatJSON
)

// String returns the flag spelling of the format.
func (f LogFormat) String() string {
	switch f {
	case FormatPretty:
		return "pretty"
	case FormatPlain:
		return "plain"
	case FormatJSON:
		return "json"
	default:
		return "auto"
	}
}

var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// DetectEnvironment returns the recommended format based on the environment.
// Logs go to stderr, so that is the stream checked for a TTY.
func DetectEnvironment() LogFormat {
	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTerminal() || isCI {
		return FormatPlain
	}
	return FormatPretty
}

// ResolveFormat applies the user's --log-format flag to auto-detection.
// userFlag should be one of: "auto", "pretty", "plain", "json", or empty.
// The second result is false for unknown values.
func ResolveFormat(autoDetected LogFormat, userFlag string) (LogFormat, bool) {
	switch userFlag {
	case "pretty":
		return FormatPretty, true
	case "plain", "ci":
		return FormatPlain, true
	case "json":
		return FormatJSON, true
	case "auto", "":
		return autoDetected, true
	default:
		return autoDetected, false
	}
}
