package logger

import (
	"strings"

	"github.com/fatih/color"
)

// colorScheme defines consistent colors for console output.
// Green: passed checks
// Red: failed checks and errors
// Yellow: warnings
type colorScheme struct {
	success *color.Color
	fail    *color.Color
	warn    *color.Color
	info    *color.Color
	debug   *color.Color
}

// newColorScheme creates the standard color scheme.
func newColorScheme() *colorScheme {
	return &colorScheme{
		success: color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
		warn:    color.New(color.FgYellow),
		info:    color.New(color.FgBlue),
		debug:   color.New(color.FgCyan),
	}
}

// forLevel returns the color used for a log level label.
func (s *colorScheme) forLevel(level string) *color.Color {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return s.debug
	case "WARN":
		return s.warn
	case "ERROR":
		return s.fail
	default:
		return s.info
	}
}
