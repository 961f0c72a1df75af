// Package errors provides categorized CLI errors with remediation guidance.
// Engine-level failures (schema loading, validation, template loading) are
// defined next to the code that produces them; this package wraps them at the
// CLI boundary for user-facing reporting.
package errors

// ErrorCategory classifies a CLI error for display and exit handling.
type ErrorCategory int

const (
	// Argument indicates invalid or missing command arguments.
	Argument ErrorCategory = iota
	// Configuration indicates a problem with configuration files or values.
	Configuration
	// Prerequisite indicates a required file, directory, or schema is missing.
	Prerequisite
	// Runtime indicates a failure during command execution.
	Runtime
)

// String returns the display heading for an ErrorCategory.
func (c ErrorCategory) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Configuration:
		return "Configuration Error"
	case Prerequisite:
		return "Prerequisite Error"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// CLIError is a user-facing error with category, usage hint, and remediation steps.
type CLIError struct {
	Category    ErrorCategory
	Message     string
	Usage       string
	Remediation []string
	Cause       error
}

// Error returns the error message.
func (e *CLIError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *CLIError) Unwrap() error {
	return e.Cause
}

// NewArgumentError creates an Argument-category error with remediation steps.
func NewArgumentError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Argument, Message: message, Remediation: remediation}
}

// NewArgumentErrorWithUsage creates an Argument-category error with a usage string.
func NewArgumentErrorWithUsage(message, usage string, remediation ...string) *CLIError {
	return &CLIError{Category: Argument, Message: message, Usage: usage, Remediation: remediation}
}

// NewConfigError creates a Configuration-category error.
func NewConfigError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Configuration, Message: message, Remediation: remediation}
}

// NewPrerequisiteError creates a Prerequisite-category error.
func NewPrerequisiteError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Prerequisite, Message: message, Remediation: remediation}
}

// NewRuntimeError creates a Runtime-category error.
func NewRuntimeError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Runtime, Message: message, Remediation: remediation}
}

// Wrap wraps an arbitrary error in a CLIError with the given category.
// Returns nil for a nil error. An existing CLIError is returned unchanged so
// categories assigned close to the failure are preserved.
func Wrap(err error, category ErrorCategory) *CLIError {
	if err == nil {
		return nil
	}
	if cliErr, ok := err.(*CLIError); ok {
		return cliErr
	}
	return &CLIError{Category: category, Message: err.Error(), Cause: err}
}
