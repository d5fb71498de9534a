// Package errors provides error types with actionable suggestions for lintkit.
// Errors carry enough context (paths, commands, exit codes) for the CLI to print
// a useful diagnostic before exiting.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Common sentinel errors for use with errors.Is().
var (
	// ErrConfig indicates a problem with the lintkit configuration file.
	ErrConfig = errors.New("configuration error")
	// ErrManifest indicates the project manifest is missing or unusable.
	ErrManifest = errors.New("manifest error")
	// ErrCommand indicates an external command exited unsuccessfully.
	ErrCommand = errors.New("command error")
	// ErrSelection indicates a framework/preset combination that is not recognized.
	ErrSelection = errors.New("selection error")
	// ErrFilesystem indicates a file could not be written or removed.
	ErrFilesystem = errors.New("filesystem error")
	// ErrNotFound indicates a resource was not found.
	ErrNotFound = errors.New("not found")
)

// LintkitError is the base error type for lintkit errors.
// It wraps an underlying error and provides additional context.
type LintkitError struct {
	// Kind is the category of error (e.g., ErrManifest, ErrCommand).
	Kind error
	// Message is the human-readable error message.
	Message string
	// Suggestion provides actionable advice for resolving the error.
	Suggestion string
	// DocLink is a URL to relevant documentation.
	DocLink string
	// Cause is the underlying error that caused this error.
	Cause error
	// Details provides additional context (e.g., file path, command).
	Details map[string]string
}

// Error implements the error interface.
func (e *LintkitError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *LintkitError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Kind
}

// Is reports whether the error's kind matches the target.
func (e *LintkitError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Format returns a formatted error message with details and suggestions.
func (e *LintkitError) Format() string {
	var sb strings.Builder

	sb.WriteString("Error: ")
	sb.WriteString(e.Error())
	sb.WriteString("\n")

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("\nDetails:\n")
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", k, e.Details[k]))
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\n💡 Suggestion: ")
		sb.WriteString(e.Suggestion)
		sb.WriteString("\n")
	}

	if e.DocLink != "" {
		sb.WriteString("\n📚 Documentation: ")
		sb.WriteString(e.DocLink)
		sb.WriteString("\n")
	}

	return sb.String()
}

// WithDetails adds details to the error.
func (e *LintkitError) WithDetails(key, value string) *LintkitError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying cause of the error.
func (e *LintkitError) WithCause(cause error) *LintkitError {
	e.Cause = cause
	return e
}

// New creates a new LintkitError with the given kind and message.
func New(kind error, message string) *LintkitError {
	return &LintkitError{
		Kind:    kind,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, kind error, message string) *LintkitError {
	return &LintkitError{
		Kind:    kind,
		Message: message,
		Cause:   err,
	}
}

// WithSuggestion creates a new error with a suggestion.
func WithSuggestion(kind error, message, suggestion string) *LintkitError {
	return &LintkitError{
		Kind:       kind,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Describe returns the most helpful rendering of err: the full Format() output
// for a LintkitError anywhere in the chain, or a plain "Error: ..." line otherwise.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	var le *LintkitError
	if errors.As(err, &le) {
		return le.Format()
	}
	return "Error: " + err.Error() + "\n"
}
