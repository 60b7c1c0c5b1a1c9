// Package logger provides console output for pubcop runs.
//
// Check outcomes are written as plain "✔ Name - detail" lines so they read
// the same in CI logs and terminals. Diagnostic messages carry [HH:MM:SS]
// timestamps and are filtered by log level. Color output is enabled only when
// writing to a terminal.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/harrison/pubcop/internal/models"
	"github.com/harrison/pubcop/internal/semver"
)

// Log level constants for filtering
const (
	levelDebug int = iota
	levelInfo
	levelWarn
	levelError
)

// Result glyphs, matching the symbols npm users know from log-symbols
const (
	SuccessSymbol = "✔"
	ErrorSymbol   = "✖"
)

// ConsoleLogger logs run progress and check results to a writer with thread safety.
// It supports log level filtering to control diagnostic verbosity.
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
	scheme      *colorScheme
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// Valid levels: debug, info, warn, error (case-insensitive).
// If logLevel is empty or invalid, defaults to "info".
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    normalizeLogLevel(logLevel),
		colorOutput: isTerminal(writer),
		scheme:      newColorScheme(),
	}
}

// SetLevel changes the minimum level for diagnostic messages.
func (cl *ConsoleLogger) SetLevel(logLevel string) {
	cl.mutex.Lock()
	defer cl.mutex.Unlock()
	cl.logLevel = normalizeLogLevel(logLevel)
}

// isTerminal checks if the writer is a terminal that supports colors.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	if color.NoColor {
		// NO_COLOR is set or stdout is not a TTY
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// normalizeLogLevel converts a log level string to lowercase and validates it.
// Returns "info" as default for empty or invalid levels.
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))

	switch normalized {
	case "debug", "info", "warn", "error":
		return normalized
	default:
		return "info"
	}
}

// shouldLog checks if a message at the given level should be logged.
func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(cl.logLevel)
}

// logLevelToInt converts a log level string to its numeric value.
func logLevelToInt(level string) int {
	switch level {
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// Debugf logs a formatted debug-level message.
func (cl *ConsoleLogger) Debugf(format string, args ...interface{}) {
	cl.logWithLevel("DEBUG", fmt.Sprintf(format, args...))
}

// Warnf logs a formatted warning-level message.
func (cl *ConsoleLogger) Warnf(format string, args ...interface{}) {
	cl.logWithLevel("WARN", fmt.Sprintf(format, args...))
}

// logWithLevel writes "[HH:MM:SS] [LEVEL] <message>" if filtering allows it.
func (cl *ConsoleLogger) logWithLevel(level string, message string) {
	if cl.writer == nil {
		return
	}
	if !cl.shouldLog(strings.ToLower(level)) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	label := level
	if cl.colorOutput {
		label = cl.scheme.forLevel(level).Sprint(level)
	}

	fmt.Fprintf(cl.writer, "[%s] [%s] %s\n", timestamp(), label, message)
}

// LogRunStart prints the banner shown before checks run.
func (cl *ConsoleLogger) LogRunStart(ctx models.InvocationContext, tag string) {
	cl.Debugf("Publishing version %s with tag %s (command %q, args %v)", ctx.Version, tag, ctx.Command, ctx.Args)
	if parsed, err := semver.Parse(ctx.Version); err == nil {
		cl.Debugf("Parsed version %s (standard release: %t)", parsed.String(), parsed.IsStandard())
	}
	cl.writeLine("Verifying package publish")
}

// LogCheckResult prints a single check outcome.
// Format: "✔ Tag - latest" or "✖ Git Branch - <error message>"
func (cl *ConsoleLogger) LogCheckResult(result models.CheckResult) {
	name := result.Check.DisplayName()

	var line string
	if result.Passed {
		symbol := SuccessSymbol
		if cl.colorOutput {
			symbol = cl.scheme.success.Sprint(symbol)
		}
		line = fmt.Sprintf("%s %s", symbol, name)
		if result.Detail != "" {
			line += " - " + result.Detail
		}
	} else {
		symbol, message := ErrorSymbol, result.Message()
		if cl.colorOutput {
			symbol = cl.scheme.fail.Sprint(symbol)
			message = cl.scheme.fail.Sprint(message)
		}
		line = fmt.Sprintf("%s %s - %s", symbol, name, message)
	}

	cl.writeLine(line)
	cl.Debugf("%s check finished in %s", name, formatDuration(result.Duration))
}

// LogSummary logs the overall outcome at debug level, or the skip reason.
func (cl *ConsoleLogger) LogSummary(result *models.RunResult) {
	if result == nil {
		return
	}
	if result.Skipped {
		cl.Debugf("Skipping checks for npm command %q", result.Context.Command)
		return
	}

	failed := len(result.FailedChecks())
	cl.Debugf("Run %s: %d checks, %d failed, took %s",
		result.RunID, len(result.Results), failed, formatDuration(result.Duration))
}

func (cl *ConsoleLogger) writeLine(line string) {
	if cl.writer == nil {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	fmt.Fprintln(cl.writer, line)
}

// timestamp returns the current time formatted as "15:04:05" (HH:MM:SS).
func timestamp() string {
	return time.Now().Format("15:04:05")
}

// formatDuration converts a time.Duration to a short human-readable string.
// Examples: "850ms", "2.4s", "1m30s"
func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		minutes := d / time.Minute
		seconds := (d % time.Minute) / time.Second
		if seconds == 0 {
			return fmt.Sprintf("%dm", minutes)
		}
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	case d >= time.Second:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
}

// NoOpLogger discards all output.
// Useful for testing or when output is disabled.
type NoOpLogger struct{}

// NewNoOpLogger creates a NoOpLogger instance.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

// LogRunStart is a no-op implementation.
func (n *NoOpLogger) LogRunStart(ctx models.InvocationContext, tag string) {}

// LogCheckResult is a no-op implementation.
func (n *NoOpLogger) LogCheckResult(result models.CheckResult) {}

// LogSummary is a no-op implementation.
func (n *NoOpLogger) LogSummary(result *models.RunResult) {}

// Debugf is a no-op implementation.
func (n *NoOpLogger) Debugf(format string, args ...interface{}) {}

// Warnf is a no-op implementation.
func (n *NoOpLogger) Warnf(format string, args ...interface{}) {}
