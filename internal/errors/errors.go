package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/imaan/internal/logger"
	"github.com/julianstephens/imaan/internal/storage"
)

// Format formats an error message with a consistent "Error: " prefix,
// adding a hint for errors the user can fix themselves.
func Format(err error) string {
	if err == nil {
		return ""
	}
	msg := fmt.Sprintf("Error: %v", err)
	if errors.Is(err, storage.ErrNotInitialized) {
		msg += "\nHint: run 'imaan init' first"
	}
	return msg
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintln(os.Stderr, Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintln(os.Stderr, Formatf(format, args...))
	os.Exit(1)
}
