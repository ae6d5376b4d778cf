// Package errors provides error handling conventions for the ttscheck CLI.
//
// This package defines sentinel errors for common failure conditions,
// an ExitError type for CLI exit code handling, and exit code constants.
// It also re-exports the wrapping helpers from cockroachdb/errors so the
// rest of the codebase imports a single errors package.
//
// # Exit Codes
//
// The exit codes distinguish failure classes the way operators consume them:
//
//   - ExitSuccess (0): run completed, no FAIL outcomes
//   - ExitChecksFailed (1): run completed, at least one FAIL outcome
//   - ExitUsage (2): bad invocation, no checks were run
//   - ExitReport (3): checks ran but the report artifact was not persisted
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. It supports error unwrapping via [errors.Unwrap] and
// [errors.As]:
//
//	err := cliErrors.NewUsageError(cliErrors.ErrUnknownCategory, "see ttscheck --help")
//	os.Exit(cliErrors.Code(err))
package errors
