package errors

import (
	"fmt"

	crdberrors "github.com/cockroachdb/errors"
)

// Exit codes for the ttscheck CLI.
const (
	// ExitSuccess indicates every check passed (no FAIL outcomes).
	ExitSuccess = 0

	// ExitChecksFailed indicates the run completed but at least one
	// check recorded a FAIL outcome.
	ExitChecksFailed = 1

	// ExitUsage indicates a bad invocation (unknown category, conflicting
	// flags, unreadable config). No checks are run.
	ExitUsage = 2

	// ExitReport indicates the report artifact could not be persisted.
	// This is distinct from check failures: the run happened but its
	// audit trail was lost.
	ExitReport = 3
)

// Sentinel errors for common failure conditions.
var (
	// ErrUnknownCategory indicates a --category value outside the known set.
	ErrUnknownCategory = crdberrors.New("unknown category")

	// ErrChecksFailed indicates one or more checks recorded a FAIL outcome.
	ErrChecksFailed = crdberrors.New("validation checks failed")

	// ErrInvalidConfig indicates the ttscheck configuration failed to load.
	ErrInvalidConfig = crdberrors.New("invalid configuration")
)

// Re-exports of cockroachdb/errors so callers use a single errors package.
var (
	New    = crdberrors.New
	Newf   = crdberrors.Newf
	Wrap   = crdberrors.Wrap
	Wrapf  = crdberrors.Wrapf
	Is     = crdberrors.Is
	As     = crdberrors.As
	Unwrap = crdberrors.Unwrap
)

// ExitError wraps an error with an exit code and optional suggestion for the
// CLI. It implements the error interface and supports unwrapping via
// errors.Unwrap.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string
}

// NewExitError creates an ExitError with the given underlying error and exit code.
// If err is nil, the returned ExitError will have a nil Err field.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{
		Err:  err,
		Code: code,
	}
}

// NewUsageError creates an ExitError with ExitUsage code and a suggestion.
func NewUsageError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUsage,
		Suggestion: suggestion,
	}
}

// NewReportError creates an ExitError with ExitReport code and a standard
// suggestion. Used when the summary artifact cannot be written.
func NewReportError(err error) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitReport,
		Suggestion: "Check that the report path is writable, or pass --report with a different location",
	}
}

// Error returns the error message from the underlying error.
// If the underlying error is nil, it returns a generic message with the exit code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As
// to examine the error chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// Code extracts the exit code from err. A nil error maps to ExitSuccess;
// an error that is not an ExitError maps to ExitUsage.
func Code(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUsage
}
