// Package ui provides unified output formatting for the sango CLI.
//
// Overview:
//   - Responsibility: Leveled CLI output, structured JSON mode, confirmation prompts
//   - Key Types: Output levels, structured messages
//   - Concurrency Model: Thread-safe output operations
//   - Error Semantics: User-facing messages only; never returns errors
//   - Performance Notes: Direct writes, minimal allocations
//
// Usage:
//
//	ui.Info("planning module %s", name)
//	ui.Error("generation failed: %v", err)
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
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

// Message represents a structured output message used in JSON mode.
type Message struct {
	Level     OutputLevel `json:"level"`
	Text      string      `json:"text"`
	Timestamp time.Time   `json:"timestamp"`
}

// SetVerbose enables or disables debug output.
func SetVerbose(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = enabled
}

// SetNonInteractive disables interactive prompts. Confirm auto-accepts
// when prompts are disabled.
func SetNonInteractive(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	nonInteractive = enabled
}

// SetJSONOutput switches all output to line-delimited JSON messages.
func SetJSONOutput(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	jsonOutput = enabled
}

// output writes a message to the appropriate output stream.
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
			fmt.Fprintf(os.Stderr, "failed to encode JSON output: %v\n", err)
		}
		return
	}

	var writer io.Writer = os.Stdout
	if level == LevelError {
		writer = os.Stderr
	}

	var prefix string
	switch level {
	case LevelDebug:
		prefix = "🔍 DEBUG:"
	case LevelInfo:
		prefix = "ℹ️  INFO:"
	case LevelWarning:
		prefix = "⚠️  WARN:"
	case LevelError:
		prefix = "❌ ERROR:"
	case LevelSuccess:
		prefix = "✅ SUCCESS:"
	}

	fmt.Fprintf(writer, "%s %s\n", prefix, text)
}

// Debug outputs a debug message. Only shown when verbose mode is enabled.
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

// Step outputs a step indicator, e.g. "[2/6] writing repository.go".
func Step(step, total int, format string, args ...interface{}) {
	mu.RLock()
	useJSON := jsonOutput
	mu.RUnlock()

	if useJSON {
		Info(format, args...)
		return
	}

	text := fmt.Sprintf(format, args...)
	fmt.Printf("  [%d/%d] %s\n", step, total, text)
}

// Item outputs a list item, e.g. "   - users".
func Item(format string, args ...interface{}) {
	mu.RLock()
	useJSON := jsonOutput
	mu.RUnlock()

	if useJSON {
		Info(format, args...)
		return
	}

	text := fmt.Sprintf(format, args...)
	fmt.Printf("   - %s\n", text)
}

// Confirm prompts the user for a yes/no answer. Returns true without
// prompting when non-interactive mode is enabled.
func Confirm(format string, args ...interface{}) bool {
	mu.RLock()
	nonInt := nonInteractive
	mu.RUnlock()

	if nonInt {
		return true
	}

	text := fmt.Sprintf(format, args...)
	fmt.Printf("❓ %s [y/N]: ", text)

	var response string
	fmt.Scanln(&response)
	return response == "y" || response == "Y" || response == "yes"
}
