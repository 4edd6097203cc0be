package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/viper"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	warnColor    = color.New(color.FgYellow)
	debugColor   = color.New(color.FgMagenta)

	// Overridden in tests.
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Success prints a success message
func Success(format string, args ...interface{}) {
	fmt.Fprintln(stdout, successColor.Sprintf("✓ "+format, args...))
}

// Error prints an error message
func Error(format string, args ...interface{}) {
	fmt.Fprintln(stderr, errorColor.Sprintf("✗ "+format, args...))
}

// Info prints an info message
func Info(format string, args ...interface{}) {
	fmt.Fprintln(stderr, infoColor.Sprintf("ℹ "+format, args...))
}

// Warn prints a warning message
func Warn(format string, args ...interface{}) {
	fmt.Fprintln(stderr, warnColor.Sprintf("⚠ "+format, args...))
}

// Debug prints a debug message if verbose mode is enabled
func Debug(format string, args ...interface{}) {
	if viper.GetBool("verbose") {
		fmt.Fprintln(stderr, debugColor.Sprintf("» "+format, args...))
	}
}

// progress is where library progress lines go: stderr when verbose, nowhere otherwise.
func progress() io.Writer {
	if viper.GetBool("verbose") {
		return stderr
	}
	return io.Discard
}
