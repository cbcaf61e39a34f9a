// Package ui provides unified output formatting for the ngforge CLI.
//
// Overview:
//   - Responsibility: Standardized logging, step indication, and user interaction
//   - Key Types: Output levels, structured messages
//   - Concurrency Model: Thread-safe output operations
//   - Error Semantics: User-facing messages, never returns errors
//   - Performance Notes: Single write per message, minimal allocations
//
// Usage:
//
//	ui.Info("Planned %d files", len(plan))
//	ui.Error("Generation failed: %v", err)
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	verbose        bool
	nonInteractive bool
	jsonOutput     bool
	mu             sync.RWMutex
)

// OutputLevel represents the severity level of a message.
type OutputLevel string

const (
	LevelDebug   OutputLevel = "debug"
	LevelInfo    OutputLevel = "info"
	LevelWarning OutputLevel = "warning"
	LevelError   OutputLevel = "error"
	LevelSuccess OutputLevel = "success"
)

// Prefix styles, one per level. Rendering degrades to plain text on
// terminals without color support.
var (
	debugStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
)

// Message represents a structured output message for JSON mode.
//
// Parameters:
//   - Level: Message severity level
//   - Text: Human-readable message content
//   - Timestamp: When the message was created
//
// Returns:
//   - None (data structure)
//
// Concurrency:
//   - Safe for concurrent access
//
// Performance:
//   - Minimal memory allocation
type Message struct {
	Level     OutputLevel `json:"level"`
	Text      string      `json:"text"`
	Timestamp time.Time   `json:"timestamp"`
}

// SetVerbose enables or disables debug output.
//
// Parameters:
//   - enabled: Whether to show debug messages
//
// Returns:
//   - None
//
// Concurrency:
//   - Thread-safe
//
// Performance:
//   - O(1) operation
func SetVerbose(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = enabled
}

// SetNonInteractive disables interactive prompts.
//
// Parameters:
//   - enabled: Whether to disable interactive prompts
//
// Returns:
//   - None
//
// Concurrency:
//   - Thread-safe
//
// Performance:
//   - O(1) operation
func SetNonInteractive(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	nonInteractive = enabled
}

// SetJSONOutput enables JSON-formatted output.
//
// Parameters:
//   - enabled: Whether to output in JSON format
//
// Returns:
//   - None
//
// Concurrency:
//   - Thread-safe
//
// Performance:
//   - O(1) operation
func SetJSONOutput(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	jsonOutput = enabled
}

// output writes a message to the appropriate output stream.
//
// Parameters:
//   - level: Message severity level
//   - format: Printf-style format string
//   - args: Format arguments
//
// Returns:
//   - None
//
// Concurrency:
//   - Thread-safe
//
// Performance:
//   - One write per message
func output(level OutputLevel, format string, args ...interface{}) {
	mu.RLock()
	useJSON := jsonOutput
	useVerbose := verbose
	mu.RUnlock()

	if level == LevelDebug && !useVerbose {
		return
	}

	text := fmt.Sprintf(format, args...)

	if useJSON {
		encoder := json.NewEncoder(os.Stdout)
		if err := encoder.Encode(Message{Level: level, Text: text, Timestamp: time.Now()}); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode JSON output: %v\n", err)
		}
		return
	}

	var writer io.Writer = os.Stdout
	var prefix string
	switch level {
	case LevelDebug:
		prefix = debugStyle.Render("DEBUG")
	case LevelInfo:
		prefix = infoStyle.Render("INFO")
	case LevelWarning:
		prefix = warningStyle.Render("WARN")
	case LevelError:
		prefix = errorStyle.Render("ERROR")
		writer = os.Stderr
	case LevelSuccess:
		prefix = successStyle.Render("OK")
	}

	fmt.Fprintf(writer, "%s %s\n", prefix, text)
}

// Debug outputs a debug message. Only shown in verbose mode.
func Debug(format string, args ...interface{}) {
	output(LevelDebug, format, args...)
}

// Info outputs an informational message.
func Info(format string, args ...interface{}) {
	output(LevelInfo, format, args...)
}

// Warning outputs a warning message.
func Warning(format string, args ...interface{}) {
	output(LevelWarning, format, args...)
}

// Error outputs an error message to stderr.
func Error(format string, args ...interface{}) {
	output(LevelError, format, args...)
}

// Success outputs a success message.
func Success(format string, args ...interface{}) {
	output(LevelSuccess, format, args...)
}

// Step outputs a step indicator with message.
//
// Parameters:
//   - step: Step number
//   - total: Total number of steps
//   - format: Printf-style format string
//   - args: Format arguments
//
// Returns:
//   - None
//
// Concurrency:
//   - Thread-safe
//
// Performance:
//   - Minimal formatting overhead
func Step(step, total int, format string, args ...interface{}) {
	mu.RLock()
	useJSON := jsonOutput
	mu.RUnlock()

	if useJSON {
		Info(format, args...)
		return
	}

	text := fmt.Sprintf(format, args...)
	fmt.Printf("  %s %s\n", stepStyle.Render(fmt.Sprintf("[%d/%d]", step, total)), text)
}

// Confirm prompts the user for confirmation.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Format arguments
//
// Returns:
//   - bool: True if user confirmed, false otherwise
//
// Concurrency:
//   - Single-threaded (blocks on user input)
//
// Performance:
//   - Blocks until user responds
func Confirm(format string, args ...interface{}) bool {
	mu.RLock()
	nonInt := nonInteractive
	mu.RUnlock()

	if nonInt {
		return true // Auto-confirm in non-interactive mode
	}

	text := fmt.Sprintf(format, args...)
	fmt.Printf("%s [y/N]: ", text)

	var response string
	fmt.Scanln(&response)
	return response == "y" || response == "Y" || response == "yes"
}
