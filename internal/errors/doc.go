// Package errors provides error handling conventions for the ztpl CLI.
//
// It re-exports the constructors and inspectors of
// [github.com/cockroachdb/errors] so callers need a single import, and
// defines sentinel errors, exit code constants and the [ExitError] type
// used by commands to control the process exit status.
//
// # Sentinel Errors
//
//	if errors.Is(err, errors.ErrRootNotFound) {
//	    // templates root is missing
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): every template passed
//   - ExitUser (1): validation failed, or the templates root is unusable
//   - ExitSystem (2): I/O failure unrelated to template content
//
// # ExitError
//
// [ExitError] carries an exit code and an optional suggestion:
//
//	err := errors.NewUserError(errors.ErrRootNotFound, "Pass --root or set templates_root")
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
