package logging

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// ErrorType represents different types of pre-classification errors
type ErrorType string

const (
	// ErrorTypeConfigParsing represents configuration parsing failures
	ErrorTypeConfigParsing ErrorType = "config_parsing_failed"
	// ErrorTypeLogSetup represents logger setup failures
	ErrorTypeLogSetup ErrorType = "log_setup_failed"
	// ErrorTypeCredentialQuery represents credential query failures
	ErrorTypeCredentialQuery ErrorType = "credential_query_failed"
	// ErrorTypeSystemError represents system errors
	ErrorTypeSystemError ErrorType = "system_error"
)

// PreExecutionError represents an error that occurs before the
// classification result is available.
type PreExecutionError struct {
	Type      ErrorType
	Message   string
	Component string
	RunID     string
	Err       error // Wrapped error for better error context preservation
}

// Error implements the error interface
func (e *PreExecutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v (component: %s, run_id: %s)", e.Type, e.Message, e.Err, e.Component, e.RunID)
	}
	return fmt.Sprintf("%s: %s (component: %s, run_id: %s)", e.Type, e.Message, e.Component, e.RunID)
}

// Unwrap returns the wrapped error
func (e *PreExecutionError) Unwrap() error {
	return e.Err
}

// HandlePreExecutionError reports a pre-classification failure on stderr
// and through the default logger, if one is installed.
func HandlePreExecutionError(errorType ErrorType, errorMsg, component, runID string) {
	// Build stderr output atomically to prevent interleaved output
	var builder strings.Builder
	fmt.Fprintf(&builder, "Error: %s\n", errorType)
	if component != "" {
		fmt.Fprintf(&builder, "  Component: %s\n", component)
	}
	fmt.Fprintf(&builder, "  Details: %s\n", errorMsg)
	if runID != "" {
		fmt.Fprintf(&builder, "  Run ID: %s\n", runID)
	}
	fmt.Fprint(os.Stderr, builder.String())

	if logger := slog.Default(); logger != nil {
		logger.Error("Pre-execution error occurred",
			"error_type", string(errorType),
			"error_message", errorMsg,
			"component", component,
			"run_id", runID,
		)
	}
}
