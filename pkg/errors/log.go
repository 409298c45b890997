package errors

import (
	"fmt"
	"os"
)

// LogHandler is a Handler that logs errors to stderr. It is the default
// global handler.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
}

// HandleError logs a FluentError to stderr.
func (h *LogHandler) HandleError(err *FluentError) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "[fluent error] %s [%s]: %v\n", err.Op, err.Kind, err.Err)
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", err.StackTrace)
	}
}
